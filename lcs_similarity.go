// lcs_similarity.go
// Package lcssimilarity computes a normalized textual-similarity score
// between two documents from the longest common subsequence (LCS) of their
// tokens. Both texts are lowercased, reduced to the comparison alphabet
// (CJK ideographs, ASCII letters and digits) and split on whitespace; the
// score is:
//
//	score = LCS(tokensOriginal, tokensSuspect) / max(1, len(tokensOriginal))
//
// clamped to [0, 1] and rounded to a configurable precision. The denominator
// is always the original text, so the metric is deliberately asymmetric: it
// measures how much of the original is reproduced in the suspect text.
//
// This package uses the functional options pattern to allow configuration of
// parameters like threshold, precision, normalizer and logging.
package lcssimilarity

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// Result holds the outcome of a similarity computation.
type Result = domain.Result

// Default configuration values.
const (
	DefaultThreshold = 0.7
	DefaultPrecision = 4
)

// LCSSimilarity provides methods to compute the LCS similarity metric
// using configurable parameters.
type LCSSimilarity struct {
	calculator ports.SimilarityCalculator
	logger     ports.Logger
}

// Option defines a functional option for configuring the metric.
type Option func(*config)

type config struct {
	Threshold  float64
	Precision  int
	Logger     ports.Logger
	Normalizer ports.Normalizer
	Tokenizer  ports.Tokenizer
}

// WithThreshold sets the score at or above which a comparison is flagged.
func WithThreshold(th float64) Option {
	return func(cfg *config) {
		cfg.Threshold = th
	}
}

// WithPrecision sets the number of decimals the score is rounded to.
func WithPrecision(p int) Option {
	return func(cfg *config) {
		cfg.Precision = p
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithTokenizer sets a custom tokenizer.
func WithTokenizer(t ports.Tokenizer) Option {
	return func(cfg *config) {
		cfg.Tokenizer = t
	}
}

// WithOptimizedNormalizer selects the pooled ASCII-table normalizer.
func WithOptimizedNormalizer() Option {
	return func(cfg *config) {
		cfg.Normalizer = normalizer.NewOptimizedNormalizer()
	}
}

// New creates a new LCSSimilarity with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*LCSSimilarity, error) {
	cfg := &config{
		Threshold: DefaultThreshold,
		Precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger.FromExisting(lg)
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = normalizer.NewDefaultTokenizer()
	}

	calculator, err := lcs.NewCalculator(lcs.SimilarityConfig{
		Threshold: cfg.Threshold,
		Precision: cfg.Precision,
	}, cfg.Logger, cfg.Normalizer, cfg.Tokenizer)
	if err != nil {
		return nil, err
	}

	return &LCSSimilarity{
		calculator: calculator,
		logger:     cfg.Logger,
	}, nil
}

// Compute calculates the LCS similarity between the original and suspect
// texts. Empty inputs are accepted and score 0; the computation itself
// cannot fail.
func (s *LCSSimilarity) Compute(ctx context.Context, original, suspect string) Result {
	return s.calculator.Compute(ctx, original, suspect)
}

var (
	defaultOnce     sync.Once
	defaultInstance *LCSSimilarity
	defaultErr      error
)

// ComputeWithDefaults calculates the similarity using a shared instance with
// default configuration. It panics if the default logger cannot be created.
func ComputeWithDefaults(original, suspect string) Result {
	defaultOnce.Do(func() {
		defaultInstance, defaultErr = New()
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultInstance.Compute(context.Background(), original, suspect)
}

// LCSLength returns the length of the longest common subsequence of two
// token sequences, using two rolling DP rows of length len(b)+1.
func LCSLength(a, b []string) int {
	return lcs.Length(a, b)
}

// NormalizeAndTokenize reduces raw text to its comparison token sequence
// using the default normalizer and tokenizer.
func NormalizeAndTokenize(text string) []string {
	n := normalizer.NewDefaultNormalizer()
	t := normalizer.NewDefaultTokenizer()
	return t.Tokenize(n.Normalize(text))
}
