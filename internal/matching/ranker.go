package matching

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/gig-matcher/internal/logger"
	"github.com/spigell/gig-matcher/internal/metrics"
	"github.com/spigell/gig-matcher/internal/profile"
	"github.com/spigell/gig-matcher/internal/scoring"
)

// RankerConfig holds the per-query result options.
type RankerConfig struct {
	// Limit caps the number of results, 0 means unlimited.
	Limit int
	// MinScore drops eligible candidates scoring below it.
	MinScore float64
}

type RankerDeps struct {
	Filter     *Filter
	Calculator *scoring.Calculator
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
}

// Ranker filters, scores and orders candidate sets. It holds no mutable state, so
// independent queries may run concurrently.
type Ranker struct {
	cfg  RankerConfig
	deps RankerDeps
}

// NewRanker creates a ranker. Filter and Calculator are required; Logger and Metrics are optional.
func NewRanker(cfg *RankerConfig, deps *RankerDeps) (*Ranker, error) {
	r := &Ranker{}
	if cfg != nil {
		r.cfg = *cfg
	}
	if deps != nil {
		r.deps = *deps
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	r.deps.Logger = logger.OrNop(r.deps.Logger)

	return r, nil
}

func (r *Ranker) Validate() error {
	if r.deps.Filter == nil {
		return errors.New("eligibility filter is required")
	}
	if r.deps.Calculator == nil {
		return errors.New("score calculator is required")
	}
	if r.cfg.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", r.cfg.Limit)
	}
	if math.IsNaN(r.cfg.MinScore) {
		return errors.New("minimum score must be a number")
	}
	return nil
}

type pair struct {
	id     string
	worker *profile.WorkerProfile
	job    *profile.JobPosting
}

// FindMatchingJobs returns the eligible jobs for the worker, best first.
func (r *Ranker) FindMatchingJobs(worker *profile.WorkerProfile, jobs []*profile.JobPosting) *Results {
	results, _ := r.FindMatchingJobsWithStats(worker, jobs)
	return results
}

// FindMatchingJobsWithStats is FindMatchingJobs that also reports how many candidates each gate dropped.
func (r *Ranker) FindMatchingJobsWithStats(worker *profile.WorkerProfile, jobs []*profile.JobPosting) (*Results, Stats) {
	subject := ""
	if worker != nil {
		subject = worker.ID
	}

	pairs := make([]pair, 0, len(jobs))
	for _, job := range jobs {
		id := ""
		if job != nil {
			id = job.ID
		}
		pairs = append(pairs, pair{id: id, worker: worker, job: job})
	}

	return r.rank(DirectionJobs, subject, pairs)
}

// FindMatchingWorkers returns the eligible workers for the job, best first.
// Eligibility still uses each worker's own radius.
func (r *Ranker) FindMatchingWorkers(job *profile.JobPosting, workers []*profile.WorkerProfile) *Results {
	results, _ := r.FindMatchingWorkersWithStats(job, workers)
	return results
}

// FindMatchingWorkersWithStats is FindMatchingWorkers that also reports per-gate statistics.
func (r *Ranker) FindMatchingWorkersWithStats(job *profile.JobPosting, workers []*profile.WorkerProfile) (*Results, Stats) {
	subject := ""
	if job != nil {
		subject = job.ID
	}

	pairs := make([]pair, 0, len(workers))
	for _, worker := range workers {
		id := ""
		if worker != nil {
			id = worker.ID
		}
		pairs = append(pairs, pair{id: id, worker: worker, job: job})
	}

	return r.rank(DirectionWorkers, subject, pairs)
}

func (r *Ranker) rank(direction Direction, subject string, pairs []pair) (*Results, Stats) {
	log := r.deps.Logger.With(
		zap.String(logger.FieldDirection, string(direction)),
		zap.String("subject_id", subject),
	)

	stats := Stats{Initial: len(pairs), RejectedBy: map[string]int{}}
	items := make([]*Candidate, 0, len(pairs))

	for _, p := range pairs {
		decision := r.deps.Filter.Check(p.worker, p.job)
		if !decision.Eligible {
			stats.RejectedBy[decision.Gate]++
			r.deps.Metrics.IncRejections(string(direction), decision.Gate)
			if ce := log.Check(zap.DebugLevel, "candidate rejected"); ce != nil {
				ce.Write(append(pairFields(p),
					zap.String("gate", decision.Gate),
					zap.String("reason", logger.TruncateForLog(decision.Reason, 200)),
				)...)
			}
			continue
		}

		score, breakdown := r.deps.Calculator.Score(p.worker, p.job, decision.DistanceKm)
		if score < r.cfg.MinScore {
			stats.BelowMinScore++
			log.Debug("candidate below minimum score",
				append(pairFields(p), zap.Float64("score", score), zap.Float64("min_score", r.cfg.MinScore))...,
			)
			continue
		}

		items = append(items, &Candidate{
			ID:         p.id,
			Worker:     p.worker,
			Job:        p.job,
			DistanceKm: decision.DistanceKm,
			Eligible:   true,
			Score:      score,
			Breakdown:  breakdown,
			Strategy:   decision.Strategy,
		})
	}

	sortCandidates(items)

	if r.cfg.Limit > 0 && len(items) > r.cfg.Limit {
		stats.OverLimit = len(items) - r.cfg.Limit
		items = items[:r.cfg.Limit]
	}

	stats.Left = len(items)
	stats.Dropped = stats.Initial - stats.Left

	r.deps.Metrics.ObserveQuery(string(direction), stats.Initial, stats.Left)
	log.Info("ranking query",
		zap.Int("initial", stats.Initial),
		zap.Int("dropped", stats.Dropped),
		zap.Int("left", stats.Left),
		zap.Any("rejected_by", stats.RejectedBy),
	)

	return &Results{Direction: direction, SubjectID: subject, Items: items}, stats
}

// sortCandidates orders by score descending, then distance ascending, then id ascending,
// so equal scores rank the same way on every run.
func sortCandidates(items []*Candidate) {
	slices.SortStableFunc(items, func(a, b *Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func pairFields(p pair) []zap.Field {
	var workerID, jobID string
	if p.worker != nil {
		workerID = p.worker.ID
	}
	if p.job != nil {
		jobID = p.job.ID
	}
	return logger.PairFields(workerID, jobID)
}
