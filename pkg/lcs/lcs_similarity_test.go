package lcs

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_lcs_similarity/internal/warmup"
)

// nopLogger discards all log output in tests.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }

func TestComputeWithOptimizedNormalizer(t *testing.T) {
	s, err := New(
		WithPortsLogger(nopLogger{}),
		WithOptimizedNormalizer(),
		WithPrecision(2),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := s.Compute(context.Background(), "Hello, World!", "goodbye world")
	if result.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", result.Score)
	}
}

func TestWarmUp(t *testing.T) {
	s, err := New(
		WithPortsLogger(nopLogger{}),
		WithWarmUpConfig(warmup.Config{
			Concurrency:  2,
			Iterations:   3,
			SampleTokens: 20,
			ForceGC:      false,
		}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.Warmed() {
		t.Error("expected instance to be warmed")
	}
}

func TestInvalidThreshold(t *testing.T) {
	if _, err := New(WithPortsLogger(nopLogger{}), WithThreshold(-1)); err == nil {
		t.Error("expected error for negative threshold")
	}
}
