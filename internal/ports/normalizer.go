package ports

// Normalizer defines the interface for text normalization.
type Normalizer interface {
	Normalize(text string) string
}

// Tokenizer defines the interface for splitting normalized text into tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}
