package lcs

import (
	"context"
	"math/rand"
	"testing"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
)

// nopLogger discards all log output in tests.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }

func newTestCalculator(t *testing.T, cfg SimilarityConfig) *Calculator {
	t.Helper()
	calc, err := NewCalculator(cfg, nopLogger{}, normalizer.NewDefaultNormalizer(), normalizer.NewDefaultTokenizer())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestLength(t *testing.T) {
	tests := []struct {
		name     string
		a        []string
		b        []string
		expected int
	}{
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 3},
		{"disjoint", []string{"a", "b", "c"}, []string{"x", "y", "z"}, 0},
		{"interleaved", []string{"a", "b", "c", "d"}, []string{"a", "c", "e", "d"}, 3},
		{"empty first", nil, []string{"a", "b"}, 0},
		{"empty second", []string{"a", "b"}, nil, 0},
		{"both empty", nil, nil, 0},
		{"repeated tokens", []string{"a", "a", "b", "a"}, []string{"a", "b", "a", "a"}, 3},
		{"single match", []string{"x"}, []string{"y", "x"}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Length(tc.a, tc.b); got != tc.expected {
				t.Errorf("Length(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

// fullTableLCS is the reference O(n*m)-space implementation the rolling-array
// version must agree with.
func fullTableLCS(a, b []string) int {
	n, m := len(a), len(b)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] > table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table[n][m]
}

func randomTokens(r *rand.Rand, n int) []string {
	alphabet := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = alphabet[r.Intn(len(alphabet))]
	}
	return tokens
}

func TestLengthMatchesFullTable(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	calc := newTestCalculator(t, DefaultConfig())

	for i := 0; i < 300; i++ {
		a := randomTokens(r, r.Intn(41))
		b := randomTokens(r, r.Intn(41))

		want := fullTableLCS(a, b)
		if got := Length(a, b); got != want {
			t.Fatalf("Length(%v, %v) = %d, full table = %d", a, b, got, want)
		}
		if got := calc.Length(a, b); got != want {
			t.Fatalf("Calculator.Length(%v, %v) = %d, full table = %d", a, b, got, want)
		}

		min := len(a)
		if len(b) < min {
			min = len(b)
		}
		if want > min {
			t.Fatalf("LCS length %d exceeds min sequence length %d", want, min)
		}
	}
}

func TestComputeScenarios(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())
	ctx := context.Background()

	tests := []struct {
		name     string
		original string
		suspect  string
		score    float64
	}{
		{"identical english", "hello world", "hello world", 1.0},
		{"half overlap", "hello world", "goodbye world", 0.5},
		{"disjoint chinese", "测试文本", "完全不同", 0.0},
		{"empty original", "", "任何文本", 0.0},
		{"empty suspect", "任何文本", "", 0.0},
		{"both empty", "", "", 0.0},
		{"punctuation ignored", "Hello, World!", "hello world", 1.0},
		{"third overlap rounded", "a b c", "a x y", 0.3333},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := calc.Compute(ctx, tc.original, tc.suspect)
			if result.Score != tc.score {
				t.Errorf("Compute(%q, %q).Score = %v, want %v", tc.original, tc.suspect, result.Score, tc.score)
			}
			if result.Score < 0 || result.Score > 1 {
				t.Errorf("score %v out of [0, 1]", result.Score)
			}
		})
	}
}

func TestComputeAsymmetry(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())
	ctx := context.Background()

	short := "hello world"
	long := "well hello big wide world"

	forward := calc.Compute(ctx, short, long)
	if forward.Score != 1.0 {
		t.Errorf("Compute(short, long).Score = %v, want 1.0", forward.Score)
	}

	backward := calc.Compute(ctx, long, short)
	if backward.Score >= 1.0 {
		t.Errorf("Compute(long, short).Score = %v, want < 1.0", backward.Score)
	}
	if backward.Score != 0.4 {
		t.Errorf("Compute(long, short).Score = %v, want 0.4", backward.Score)
	}
}

func TestComputeRoundingHalfAwayFromZero(t *testing.T) {
	calc := newTestCalculator(t, SimilarityConfig{Threshold: 0.7, Precision: 2})

	// 1 of 8 tokens: ratio 0.125 rounds up to 0.13 at two decimals.
	result := calc.Compute(context.Background(), "a b c d e f g h", "a")
	if result.Score != 0.13 {
		t.Errorf("score = %v, want 0.13", result.Score)
	}
}

func TestComputeResultFields(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())

	result := calc.Compute(context.Background(), "hello brave world", "hello brave new world")
	if result.Name != "lcs_similarity" {
		t.Errorf("Name = %q", result.Name)
	}
	if result.OriginalTokens != 3 || result.SuspectTokens != 4 {
		t.Errorf("token counts = (%d, %d), want (3, 4)", result.OriginalTokens, result.SuspectTokens)
	}
	if result.LCSLength != 3 {
		t.Errorf("LCSLength = %d, want 3", result.LCSLength)
	}
	if !result.Passed {
		t.Errorf("score %v should meet default threshold", result.Score)
	}
}

func TestComputeCancelledContext(t *testing.T) {
	calc := newTestCalculator(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := calc.Compute(ctx, "hello world", "hello world")
	if result.Score != 0 || result.Passed {
		t.Errorf("cancelled computation should score 0, got %v", result.Score)
	}
	if result.Details["error"] == nil {
		t.Error("cancelled computation should carry an error detail")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  SimilarityConfig
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"threshold too high", SimilarityConfig{Threshold: 1.5, Precision: 4}, true},
		{"threshold negative", SimilarityConfig{Threshold: -0.1, Precision: 4}, true},
		{"precision negative", SimilarityConfig{Threshold: 0.5, Precision: -1}, true},
		{"zero precision ok", SimilarityConfig{Threshold: 0.5, Precision: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
