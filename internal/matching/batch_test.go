package matching

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spigell/gig-matcher/internal/profile"
)

func TestRankAllKeepsWorkerOrder(t *testing.T) {
	t.Parallel()

	ranker := newTestRanker(t, nil, nil, nil)

	workers := make([]*profile.WorkerProfile, 0, 20)
	for i := 0; i < 20; i++ {
		w := securityWorker()
		w.ID = fmt.Sprintf("w%02d", i)
		w.RadiusKm = float64(i)
		workers = append(workers, w)
	}
	jobs := []*profile.JobPosting{jobAt("j0", 0), jobAt("j1", 5), jobAt("j2", 10)}

	for _, concurrency := range []int{0, 1, 4} {
		results, err := ranker.RankAll(context.Background(), workers, jobs, concurrency)
		if err != nil {
			t.Fatalf("unexpected error with concurrency %d: %v", concurrency, err)
		}
		if len(results) != len(workers) {
			t.Fatalf("expected %d results, got %d", len(workers), len(results))
		}
		for i, res := range results {
			if res.SubjectID != workers[i].ID {
				t.Fatalf("expected results for %s at %d, got %s", workers[i].ID, i, res.SubjectID)
			}
			want := ranker.FindMatchingJobs(workers[i], jobs).IDs()
			if diff := cmp.Diff(want, res.IDs()); diff != "" {
				t.Fatalf("unexpected ranking for %s (-want +got):\n%s", workers[i].ID, diff)
			}
		}
	}
}

func TestRankAllCancelledContext(t *testing.T) {
	t.Parallel()

	ranker := newTestRanker(t, nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ranker.RankAll(ctx, []*profile.WorkerProfile{securityWorker()}, []*profile.JobPosting{securityJob()}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
