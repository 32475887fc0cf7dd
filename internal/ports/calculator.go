package ports

import (
	"context"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for computing similarity between texts.
type SimilarityCalculator interface {
	Compute(ctx context.Context, original, suspect string) domain.Result
}

// Logger defines the structured logging interface used across the package.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}
