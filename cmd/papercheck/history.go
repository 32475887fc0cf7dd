package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_lcs_similarity/internal/config"
	"github.com/baditaflorin/go_lcs_similarity/internal/report"
)

func newHistoryCommand(configFlag *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent comparisons from the history database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			store, err := report.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			comparisons, err := store.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(comparisons) == 0 {
				fmt.Println("No comparisons recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(comparisons))
			for _, c := range comparisons {
				rows = append(rows, []string{
					shortID(c.ID),
					c.OriginalPath,
					c.SuspectPath,
					fmt.Sprintf("%d", c.LCSLength),
					fmt.Sprintf("%.2f", c.Score),
					c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}
			fmt.Println(renderTable(
				[]string{"ID", "ORIGINAL", "SUSPECT", "LCS", "SCORE", "WHEN"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of comparisons to show")
	return cmd
}

// shortID truncates a record id for display. Rows written by other tools may
// carry ids shorter than a uuid prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
