// Package lcs implements the longest-common-subsequence similarity engine.
//
// The similarity between two texts is the LCS length of their normalized
// token sequences divided by the token count of the original text, clamped
// to [0, 1] and rounded to a configured number of decimals. The denominator
// is always the original (first) sequence, which makes the metric asymmetric
// on purpose: it answers "what fraction of the original is reproduced in the
// suspect text", not a symmetric distance.
package lcs

import (
	"context"
	"errors"
	"math"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/pool"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// SimilarityConfig holds configuration for the LCS similarity calculator.
type SimilarityConfig struct {
	Threshold float64
	Precision int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		Threshold: 0.7,
		Precision: 4,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if c.Precision < 0 || c.Precision > 10 {
		return errors.New("precision must be between 0 and 10")
	}
	return nil
}

// Length returns the length of the longest common subsequence of a and b.
//
// The dynamic program keeps exactly two rows of length len(b)+1 (rolling
// array) instead of the full table: O(n*m) time, O(m) space. Both rows start
// zeroed so the row acting as "previous" on the first iteration is the
// all-zero base row. The recurrence has a strict dependency on the previous
// row and previous column, so a single computation is not parallelized.
func Length(a, b []string) int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0
	}

	var rows [2][]int
	rows[0] = make([]int, m+1)
	rows[1] = make([]int, m+1)

	return fillRows(rows, a, b)
}

// fillRows runs the rolling-array recurrence over pre-zeroed rows and
// returns the LCS length at row n%2, column m.
func fillRows(rows [2][]int, a, b []string) int {
	n, m := len(a), len(b)
	for i := 1; i <= n; i++ {
		cur := rows[i%2]
		prev := rows[(i-1)%2]
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
	}
	return rows[n%2][m]
}

// Calculator implements the LCS similarity calculation.
type Calculator struct {
	config     SimilarityConfig
	logger     ports.Logger
	normalizer ports.Normalizer
	tokenizer  ports.Tokenizer
	rows       *pool.RowPool
}

// NewCalculator creates a new LCS similarity calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger, normalizer ports.Normalizer, tokenizer ports.Tokenizer) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
		tokenizer:  tokenizer,
		rows:       pool.NewRowPool(1024),
	}, nil
}

// Tokens normalizes text and splits it into comparison tokens.
func (c *Calculator) Tokens(text string) []string {
	return c.tokenizer.Tokenize(c.normalizer.Normalize(text))
}

// Length computes the LCS length of two token sequences using pooled rows.
func (c *Calculator) Length(a, b []string) int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0
	}

	buf0 := c.rows.Get()
	buf1 := c.rows.Get()
	defer c.rows.Put(buf0)
	defer c.rows.Put(buf1)

	var rows [2][]int
	rows[0] = zeroRow(buf0, m+1)
	rows[1] = zeroRow(buf1, m+1)
	*buf0 = rows[0]
	*buf1 = rows[1]

	return fillRows(rows, a, b)
}

// zeroRow resizes a pooled buffer to n entries, all zero.
func zeroRow(buf *[]int, n int) []int {
	row := *buf
	if cap(row) < n {
		return make([]int, n)
	}
	row = row[:n]
	for i := range row {
		row[i] = 0
	}
	return row
}

// Compute calculates the LCS similarity between the original and suspect texts.
//
// The score is LCSLength / max(1, len(original tokens)), clamped to [0, 1]
// and rounded half away from zero to the configured precision. An empty
// original or suspect text yields a score of 0 without error. The division
// is guarded by the max(1, ...) floor, so the computation always succeeds.
func (c *Calculator) Compute(ctx context.Context, original, suspect string) domain.Result {
	c.logger.Debug("Starting LCS similarity computation",
		"original_bytes", len(original),
		"suspect_bytes", len(suspect),
	)

	details := make(map[string]interface{})

	tokensOriginal := c.Tokens(original)
	tokensSuspect := c.Tokens(suspect)

	c.logger.Debug("Tokenized texts",
		"original_tokens", len(tokensOriginal),
		"suspect_tokens", len(tokensSuspect),
	)

	// Check for context cancellation before the O(n*m) step.
	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.Result{
			Name:    "lcs_similarity",
			Score:   0,
			Passed:  false,
			Details: details,
		}
	default:
	}

	lcsLength := c.Length(tokensOriginal, tokensSuspect)

	base := len(tokensOriginal)
	if base < 1 {
		base = 1
	}
	ratio := float64(lcsLength) / float64(base)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	factor := math.Pow(10, float64(c.config.Precision))
	score := math.Round(ratio*factor) / factor

	passed := score >= c.config.Threshold

	details["original_tokens"] = len(tokensOriginal)
	details["suspect_tokens"] = len(tokensSuspect)
	details["lcs_length"] = lcsLength
	details["threshold"] = c.config.Threshold

	c.logger.Debug("Computed LCS similarity",
		"score", score,
		"lcs_length", lcsLength,
		"passed", passed,
	)

	return domain.Result{
		Name:           "lcs_similarity",
		Score:          score,
		Passed:         passed,
		OriginalTokens: len(tokensOriginal),
		SuspectTokens:  len(tokensSuspect),
		LCSLength:      lcsLength,
		Threshold:      c.config.Threshold,
		Details:        details,
	}
}
