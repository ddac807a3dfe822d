package matching

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/spigell/gig-matcher/internal/profile"
)

// RankAll runs FindMatchingJobs for every worker, at most concurrency queries at a time
// (0 means no limit). Results keep the order of workers.
func (r *Ranker) RankAll(ctx context.Context, workers []*profile.WorkerProfile, jobs []*profile.JobPosting, concurrency int) ([]*Results, error) {
	out := make([]*Results, len(workers))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, worker := range workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = r.FindMatchingJobs(worker, jobs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
