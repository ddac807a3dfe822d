package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/gig-matcher/internal/logger"
)

var legacyCmd = &cobra.Command{
	Use:   "legacy",
	Short: "Check a worker and a job with the legacy boolean match",
	Run: func(cmd *cobra.Command, _ []string) {
		runLegacy(cmd)
	},
}

func init() {
	rootCmd.AddCommand(legacyCmd)

	legacyCmd.Flags().String("worker", "", "id of the worker")
	legacyCmd.Flags().String("job", "", "id of the job")
	legacyCmd.MarkFlagRequired("worker")
	legacyCmd.MarkFlagRequired("job")
}

func runLegacy(cmd *cobra.Command) {
	e := newEngine()
	workers, jobs := e.loadCandidates()

	workerID, _ := cmd.Flags().GetString("worker")
	jobID, _ := cmd.Flags().GetString("job")
	worker := e.findWorker(workers, workerID)
	job := e.findJob(jobs, jobID)

	matched := e.ranker.Match(worker, job)
	decision := e.filter.Check(worker, job)

	e.writeMetrics()

	e.logger.Info("legacy match",
		append(logger.PairFields(worker.ID, job.ID),
			zap.Bool("matched", matched),
			zap.Bool("eligible", decision.Eligible),
			zap.String("gate", decision.Gate),
			zap.String("reason", decision.Reason),
		)...,
	)

	if err := printJSON(map[string]any{
		"worker_id": worker.ID,
		"job_id":    job.ID,
		"matched":   matched,
		"eligible":  decision.Eligible,
	}); err != nil {
		e.logger.Fatal("printing result", zap.Error(err))
	}
}
