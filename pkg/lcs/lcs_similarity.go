// Package lcs exposes the LCS similarity calculator with performance
// oriented options such as the pooled normalizer and system warm-up.
package lcs

import (
	"context"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/baditaflorin/go_lcs_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Similarity provides methods to compute the LCS similarity metric.
type Similarity struct {
	calculator ports.SimilarityCalculator
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring Similarity.
type Option func(*similarityConfig)

type similarityConfig struct {
	Threshold    float64
	Precision    int
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	Tokenizer    ports.Tokenizer
	WarmUp       bool
	WarmUpConfig warmup.Config
}

// WithThreshold sets a custom threshold for the plagiarism flag.
func WithThreshold(th float64) Option {
	return func(cfg *similarityConfig) {
		cfg.Threshold = th
	}
}

// WithPrecision sets a custom precision for rounding the score.
func WithPrecision(p int) Option {
	return func(cfg *similarityConfig) {
		cfg.Precision = p
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *similarityConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortsLogger sets a logger that already satisfies the internal interface.
func WithPortsLogger(lg ports.Logger) Option {
	return func(cfg *similarityConfig) {
		cfg.Logger = lg
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *similarityConfig) {
		cfg.Normalizer = n
	}
}

// WithTokenizer sets a custom tokenizer.
func WithTokenizer(t ports.Tokenizer) Option {
	return func(cfg *similarityConfig) {
		cfg.Tokenizer = t
	}
}

// WithOptimizedNormalizer selects the pooled ASCII-table normalizer.
func WithOptimizedNormalizer() Option {
	return func(cfg *similarityConfig) {
		cfg.Normalizer = normalizer.NewOptimizedNormalizer()
	}
}

// WithWarmUp enables a warm-up pass during construction.
func WithWarmUp(enable bool) Option {
	return func(cfg *similarityConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(wc warmup.Config) Option {
	return func(cfg *similarityConfig) {
		cfg.WarmUp = true
		cfg.WarmUpConfig = wc
	}
}

// New creates a new Similarity instance.
func New(opts ...Option) (*Similarity, error) {
	defaults := lcs.DefaultConfig()

	cfg := &similarityConfig{
		Threshold:    defaults.Threshold,
		Precision:    defaults.Precision,
		WarmUpConfig: warmup.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
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

	s := &Similarity{
		calculator: calculator,
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
	}

	if cfg.WarmUp {
		manager := warmup.NewManager(cfg.Logger, cfg.WarmUpConfig)
		manager.RegisterNormalizer(cfg.Normalizer)
		manager.RegisterCalculator(calculator)
		manager.WarmUp(context.Background())
		s.warmed = true
	}

	return s, nil
}

// Compute calculates the LCS similarity between the original and suspect texts.
func (s *Similarity) Compute(ctx context.Context, original, suspect string) domain.Result {
	return s.calculator.Compute(ctx, original, suspect)
}

// Warmed reports whether a warm-up pass ran during construction.
func (s *Similarity) Warmed() bool {
	return s.warmed
}
