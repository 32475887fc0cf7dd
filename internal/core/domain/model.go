package domain

// Result holds the outcome of a similarity computation.
type Result struct {
	Name           string
	Score          float64
	Passed         bool
	OriginalTokens int
	SuspectTokens  int
	LCSLength      int
	Threshold      float64
	Details        map[string]interface{}
}
