package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/gig-matcher/internal/matching"
)

const (
	PromptPrint             = "Print results"
	PromptReportByEmployers = "Report by employers"
	PromptResultsToFile     = "Dump results to file"
	PromptExit              = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What to do with the results?",
	Items: []string{PromptPrint, PromptReportByEmployers, PromptResultsToFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidates for a worker, a job or every worker",
}

var matchJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Rank eligible jobs for a worker",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd, matching.DirectionJobs)
	},
}

var matchWorkersCmd = &cobra.Command{
	Use:   "workers",
	Short: "Rank eligible workers for a job",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd, matching.DirectionWorkers)
	},
}

var matchAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Rank jobs for every worker and print the results as JSON",
	Run: func(_ *cobra.Command, _ []string) {
		runMatchAll()
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.AddCommand(matchJobsCmd, matchWorkersCmd, matchAllCmd)

	matchCmd.PersistentFlags().Int("limit", 0, "maximum number of results per query, 0 means unlimited")
	matchCmd.PersistentFlags().Float64("min-score", 0, "drop eligible candidates scoring below this value")
	matchCmd.PersistentFlags().BoolP("auto-approve", "y", false, "print the results without asking for an action")

	matchJobsCmd.Flags().String("worker", "", "id of the worker to rank jobs for")
	matchWorkersCmd.Flags().String("job", "", "id of the job to rank workers for")
	matchAllCmd.Flags().Int("concurrency", 0, "number of worker queries running at once, 0 means unlimited")

	for _, required := range []struct {
		cmd  *cobra.Command
		name string
	}{{matchJobsCmd, "worker"}, {matchWorkersCmd, "job"}} {
		if err := required.cmd.MarkFlagRequired(required.name); err != nil {
			log.Fatalf("marking %s flag as required: %v", required.name, err)
		}
	}

	viper.BindPFlag("limit", matchCmd.PersistentFlags().Lookup("limit"))
	viper.BindPFlag("min-score", matchCmd.PersistentFlags().Lookup("min-score"))
	viper.BindPFlag("concurrency", matchAllCmd.Flags().Lookup("concurrency"))
}

// runMatch answers a single ranking query and lets the user review the results.
func runMatch(cmd *cobra.Command, direction matching.Direction) {
	e := newEngine()
	workers, jobs := e.loadCandidates()

	var results *matching.Results
	var stats matching.Stats

	switch direction {
	case matching.DirectionJobs:
		id, _ := cmd.Flags().GetString("worker")
		results, stats = e.ranker.FindMatchingJobsWithStats(e.findWorker(workers, id), jobs.Items)
	case matching.DirectionWorkers:
		id, _ := cmd.Flags().GetString("job")
		results, stats = e.ranker.FindMatchingWorkersWithStats(e.findJob(jobs, id), workers.Items)
	}

	e.writeMetrics()

	if results.Len() == 0 {
		e.logger.Info("exiting",
			zap.String("reason", "no eligible candidates"),
			zap.Any("rejected_by", stats.RejectedBy),
		)
		return
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if err := printJSON(results); err != nil {
			e.logger.Fatal("printing results", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			e.logger.Fatal("exiting", zap.Error(err))
		}

		e.logger.Info("current list of results", zap.Int("count", results.Len()))

		if err := handleAction(action, e.logger, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			e.logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, results *matching.Results) error {
	switch action {
	case PromptPrint:
		return printJSON(results)
	case PromptReportByEmployers:
		pretty, _ := json.MarshalIndent(results.ReportByEmployer(), "", "  ")
		logger.Info(string(pretty), zap.Int("results count", results.Len()))
		return nil
	case PromptResultsToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func runMatchAll() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := newEngine()
	workers, jobs := e.loadCandidates()

	all, err := e.ranker.RankAll(ctx, workers.Items, jobs.Items, e.cfg.Concurrency)
	if err != nil {
		e.logger.Fatal("ranking all workers", zap.Error(err))
	}

	e.writeMetrics()

	matched := 0
	for _, results := range all {
		if results.Len() > 0 {
			matched++
		}
	}
	e.logger.Info("ranked jobs for every worker",
		zap.Int("workers", len(all)),
		zap.Int("workers with matches", matched),
		zap.Int("concurrency", e.cfg.Concurrency),
	)

	if err := printJSON(all); err != nil {
		e.logger.Fatal("printing results", zap.Error(err))
	}
}

// printJSON writes v to stdout. Logs go to stderr, so the output can be piped.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
