// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robosu12/SLAM-daily-update/internal/githubapi"
	"github.com/robosu12/SLAM-daily-update/internal/pipeline"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run one discovery-and-update pass",
	Long: `Update runs the full pipeline once: search GitHub for matching
repositories, skip the ones already in the ledger, extract paper
metadata from each new repository's README, rewrite the summary table
sorted by year (newest first), and record the processed repositories.

A run aborts only when the API quota is exhausted; every other failure
skips the affected repository and the run continues.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().String("ledger", "", "processed-repositories file (default processed_repos.txt)")
	updateCmd.Flags().String("summary", "", "summary markdown document (default README.md)")
	updateCmd.Flags().Bool("only-recent", false, "process only repositories updated within the last 7 days")
	updateCmd.Flags().Bool("no-dedup", false, "process repositories even if they are in the ledger")
	updateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	client := githubapi.NewClient(cmd.Context(), cfg.GitHub)

	stats, err := pipeline.Run(cmd.Context(), client, cfg, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "done: %d discovered, %d selected, %d processed, %d skipped\n",
		stats.Discovered, stats.Selected, stats.Processed, stats.Skipped)
	return nil
}
