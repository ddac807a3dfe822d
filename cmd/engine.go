package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/gig-matcher/internal/config"
	"github.com/spigell/gig-matcher/internal/logger"
	"github.com/spigell/gig-matcher/internal/matching"
	"github.com/spigell/gig-matcher/internal/metrics"
	"github.com/spigell/gig-matcher/internal/profile"
	"github.com/spigell/gig-matcher/internal/qualification"
	"github.com/spigell/gig-matcher/internal/scoring"
)

// engine is everything a command needs to answer matching queries.
type engine struct {
	cfg      *config.Config
	logger   *zap.Logger
	filter   *matching.Filter
	ranker   *matching.Ranker
	registry *prometheus.Registry
}

func newEngine() *engine {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	cfg, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the gig-matcher", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(cfg, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	catalog, err := qualification.NewCatalog(cfg.MandatoryQualifications)
	if err != nil {
		logger.Fatal("building the mandatory qualification catalog", zap.Error(err))
	}

	filter, err := matching.NewFilter(catalog)
	if err != nil {
		logger.Fatal("creating the eligibility filter", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	m := metrics.New()
	if err := m.Register(registry); err != nil {
		logger.Fatal("registering metrics", zap.Error(err))
	}

	ranker, err := matching.NewRanker(
		&matching.RankerConfig{Limit: cfg.Limit, MinScore: cfg.MinScore},
		&matching.RankerDeps{
			Filter:     filter,
			Calculator: scoring.NewCalculator(cfg.Scoring),
			Logger:     logger,
			Metrics:    m,
		},
	)
	if err != nil {
		logger.Fatal("creating the ranker", zap.Error(err))
	}

	return &engine{
		cfg:      cfg,
		logger:   logger,
		filter:   filter,
		ranker:   ranker,
		registry: registry,
	}
}

// loadCandidates reads both candidate files and drops jobs of excluded employers.
func (e *engine) loadCandidates() (*profile.Workers, *profile.Jobs) {
	if e.cfg.WorkersFile == "" || e.cfg.JobsFile == "" {
		e.logger.Fatal("candidate files are not configured",
			zap.String("hint", "set workers-file and jobs-file in the configuration file or pass them as flags"),
		)
	}

	workers, err := profile.LoadWorkers(e.cfg.WorkersFile)
	if err != nil {
		e.logger.Fatal("loading workers", zap.Error(err))
	}

	jobs, err := profile.LoadJobs(e.cfg.JobsFile)
	if err != nil {
		e.logger.Fatal("loading jobs", zap.Error(err))
	}

	if excluded := jobs.Exclude(e.cfg.ExcludedEmployers()); len(excluded) > 0 {
		e.logger.Info("excluded jobs of configured employers", zap.Strings("jobs", excluded))
	}

	e.logger.Info("loaded candidates",
		zap.Int("workers", workers.Len()),
		zap.Int("jobs", jobs.Len()),
	)

	return workers, jobs
}

func (e *engine) writeMetrics() {
	if e.cfg.MetricsFile == "" {
		return
	}

	if err := metrics.WriteTextfile(e.cfg.MetricsFile, e.registry); err != nil {
		e.logger.Warn("writing metrics", zap.Error(err))
		return
	}

	e.logger.Debug("metrics written", zap.String("filename", e.cfg.MetricsFile))
}

func (e *engine) findWorker(workers *profile.Workers, id string) *profile.WorkerProfile {
	worker := workers.FindByID(id)
	if worker == nil {
		e.logger.Fatal("worker with given id not found",
			zap.String(logger.FieldWorkerID, id),
			zap.Int("workers count", workers.Len()),
		)
	}
	return worker
}

func (e *engine) findJob(jobs *profile.Jobs, id string) *profile.JobPosting {
	job := jobs.FindByID(id)
	if job == nil {
		e.logger.Fatal("job with given id not found",
			zap.String(logger.FieldJobID, id),
			zap.Int("jobs count", jobs.Len()),
		)
	}
	return job
}
