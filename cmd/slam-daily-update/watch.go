// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/robosu12/SLAM-daily-update/internal/githubapi"
	"github.com/robosu12/SLAM-daily-update/internal/pipeline"
)

// defaultSchedule runs the update once a day at 06:00.
const defaultSchedule = "0 6 * * *"

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the update on a cron schedule until interrupted",
	Long: `Watch keeps the process alive and runs an update pass on a cron
schedule (default: daily at 06:00). Each pass is a normal update run;
a pass that fails does not stop the schedule. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("schedule", defaultSchedule, "cron expression for update passes")
	watchCmd.Flags().String("ledger", "", "processed-repositories file (default processed_repos.txt)")
	watchCmd.Flags().String("summary", "", "summary markdown document (default README.md)")
	watchCmd.Flags().Bool("only-recent", false, "process only repositories updated within the last 7 days")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	schedule, _ := cmd.Flags().GetString("schedule")
	cfg := buildConfig(cmd)
	ctx := cmd.Context()

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		client := githubapi.NewClient(ctx, cfg.GitHub)
		stats, err := pipeline.Run(ctx, client, cfg, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: update pass aborted: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stdout, "pass done: %d discovered, %d selected, %d processed, %d skipped\n",
			stats.Discovered, stats.Selected, stats.Processed, stats.Skipped)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	c.Start()
	fmt.Fprintf(os.Stdout, "watching: schedule %q, Ctrl-C to stop\n", schedule)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}

	stop := c.Stop()
	<-stop.Done()
	return nil
}
