package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_lcs_similarity/internal/config"
	"github.com/baditaflorin/go_lcs_similarity/internal/report"
	"github.com/baditaflorin/go_lcs_similarity/internal/textio"
	"github.com/baditaflorin/go_lcs_similarity/pkg/lcs"
)

func newCheckCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <original> <suspect> <output>",
		Short: "Compare two documents and write the duplication rate",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(*configFlag, args[0], args[1], args[2])
		},
	}
}

func runCheck(configPath, originalPath, suspectPath, outputPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	for _, path := range []string{originalPath, suspectPath, outputPath} {
		if !textio.VerifyPathSafety(path) {
			return fmt.Errorf("unsafe file path: %s", path)
		}
	}

	logger, err := newCLILogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()

	original, err := textio.LoadContent(originalPath)
	if err != nil {
		return fmt.Errorf("load original: %w", err)
	}
	suspect, err := textio.LoadContent(suspectPath)
	if err != nil {
		return fmt.Errorf("load suspect: %w", err)
	}
	if original == "" {
		logger.Warn("Original document is empty", "path", originalPath)
	}
	if suspect == "" {
		logger.Warn("Suspect document is empty", "path", suspectPath)
	}

	similarity, err := lcs.New(
		lcs.WithLogger(logger),
		lcs.WithThreshold(cfg.Similarity.Threshold),
		lcs.WithPrecision(cfg.Similarity.Precision),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	result := similarity.Compute(context.Background(), original, suspect)
	logger.Info("Similarity computed",
		"score", result.Score,
		"lcs_length", result.LCSLength,
		"duration", time.Since(start),
	)

	if err := textio.PersistContent(outputPath, fmt.Sprintf("%.2f", result.Score)); err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	if cfg.History.Enabled {
		if err := recordComparison(cfg.History.Path, originalPath, suspectPath, result.OriginalTokens, result.SuspectTokens, result.LCSLength, result.Score); err != nil {
			// History is best effort; a failed insert does not fail the check.
			logger.Warn("Failed to record comparison history", "error", err)
		}
	}

	fmt.Printf("Duplication rate: %.2f%%\n", result.Score*100)
	if result.Passed {
		fmt.Println("Flagged: score meets the plagiarism threshold")
	}
	fmt.Printf("Result saved to: %s\n", outputPath)
	return nil
}

func recordComparison(dbPath, originalPath, suspectPath string, originalTokens, suspectTokens, lcsLength int, score float64) error {
	store, err := report.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(context.Background(), report.Comparison{
		OriginalPath:   originalPath,
		SuspectPath:    suspectPath,
		OriginalTokens: originalTokens,
		SuspectTokens:  suspectTokens,
		LCSLength:      lcsLength,
		Score:          score,
	})
	return err
}

// newCLILogger builds a synchronous stderr logger so command output on
// stdout stays clean.
func newCLILogger(cfg config.Logging) (l.Logger, error) {
	output := os.Stderr
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = file
	}

	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:     output,
		JsonFormat: cfg.JSON,
		AsyncWrite: false,
		AddSource:  false,
	})
}
