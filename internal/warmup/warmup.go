package warmup

import (
	"context"
	"math/rand"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// Config defines configuration for warming up the similarity components.
// Warmup pre-touches the normalizer buffers and the DP row pool so the first
// real computation does not pay the allocation cost.
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample token count used to build warmup texts
	SampleTokens int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency:  runtime.NumCPU(),
		Iterations:   100,
		SampleTokens: 200,
		Duration:     2 * time.Second,
		ForceGC:      true,
	}
}

// Manager handles warmup runs for registered components.
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	normalizers []ports.Normalizer
	config      Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up.
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting warmup",
		"components", len(wm.calculators)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	original := sampleText(wm.config.SampleTokens)
	shuffled := shuffleTokens(original)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}

				for _, norm := range wm.normalizers {
					_ = norm.Normalize(original)
				}
				for _, calc := range wm.calculators {
					if j%2 == 0 {
						_ = calc.Compute(warmupCtx, original, original)
					} else {
						_ = calc.Compute(warmupCtx, original, shuffled)
					}
				}
			}
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("Warmup completed", "duration", time.Since(startTime))
}

var sampleWords = []string{
	"paper", "check", "token", "sequence", "subsequence", "original",
	"suspect", "similarity", "score", "normalize", "compare", "report",
}

// sampleText builds a deterministic text with the requested token count.
func sampleText(tokens int) string {
	if tokens <= 0 {
		tokens = 1
	}
	var sb strings.Builder
	for i := 0; i < tokens; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sampleWords[i%len(sampleWords)])
	}
	return sb.String()
}

// shuffleTokens returns text with its tokens in a pseudo-random order, so
// calculators exercise the mismatch branches of the DP as well.
func shuffleTokens(text string) string {
	words := strings.Fields(text)
	r := rand.New(rand.NewSource(1))
	r.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	return strings.Join(words, " ")
}
