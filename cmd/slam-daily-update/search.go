// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robosu12/SLAM-daily-update/internal/discover"
	"github.com/robosu12/SLAM-daily-update/internal/githubapi"
	"github.com/robosu12/SLAM-daily-update/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search GitHub for matching repositories without updating anything",
	Long: `Search runs the discovery stage only and prints the matching
repositories. No README is fetched, no file is modified. Use --out to
save the discovery pass to a YAML snapshot for later inspection.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "write a YAML discovery snapshot to this path")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	client := githubapi.NewClient(cmd.Context(), cfg.GitHub)

	repos, err := discover.Discover(cmd.Context(), client, cfg.Discovery, os.Stderr)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := discover.WriteSnapshot(out, cfg.Discovery, repos); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "snapshot written to %s\n", out)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(repos)
	}

	formatRepoTable(repos)
	return nil
}

// formatRepoTable prints discovered repositories as a fixed-width table.
func formatRepoTable(repos []types.RepoSummary) {
	if len(repos) == 0 {
		fmt.Println("No repositories found.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-45s  %-19s  %s\n", "Rank", "Repository", "Updated", "Description")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range repos {
		desc := r.Description
		if len(desc) > 38 {
			desc = desc[:35] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-45s  %-19s  %s\n",
			i+1, truncate(r.FullName, 45), r.UpdatedAt.Format("2006-01-02 15:04:05"), desc)
	}

	fmt.Fprintf(os.Stdout, "\n%d repositories\n", len(repos))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
