package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:   "papercheck [original] [suspect] [output]",
		Short: "Token-level LCS duplication checker",
		Long: `papercheck measures how much of an original document is reproduced in a
suspect document. Both texts are normalized (lowercased, reduced to CJK
ideographs plus ASCII letters and digits) and tokenized on whitespace; the
duplication rate is the longest common subsequence length divided by the
original token count. The rate is written to the output file with two
decimals.`,
		Args:          cobra.RangeArgs(0, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare three-path invocation mirrors `papercheck check`.
			switch len(args) {
			case 3:
				return runCheck(configFlag, args[0], args[1], args[2])
			case 0:
				return cmd.Help()
			default:
				return fmt.Errorf("expected <original> <suspect> <output>, got %d argument(s)", len(args))
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newCheckCommand(&configFlag))
	rootCmd.AddCommand(newHistoryCommand(&configFlag))

	return rootCmd
}
