package matching

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/gig-matcher/internal/metrics"
	"github.com/spigell/gig-matcher/internal/profile"
)

func TestLegacyMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		worker  func() *profile.WorkerProfile
		job     func() *profile.JobPosting
		matched bool
	}{
		{
			name:    "shared category at the same spot",
			worker:  securityWorker,
			job:     securityJob,
			matched: true,
		},
		{
			name:   "free-form tags compared case-insensitively",
			worker: func() *profile.WorkerProfile { w := securityWorker(); w.SelectedTags = profile.NewTags("nachtschicht"); return w },
			job: func() *profile.JobPosting {
				j := securityJob()
				j.Tags = profile.NewTags("Nachtschicht", "Wochenende")
				return j
			},
			matched: true,
		},
		{
			name:   "no shared free-form tag",
			worker: securityWorker,
			job: func() *profile.JobPosting {
				j := securityJob()
				j.Tags = profile.NewTags("Wochenende")
				return j
			},
		},
		{
			name:   "categories differ",
			worker: securityWorker,
			job: func() *profile.JobPosting {
				j := securityJob()
				j.Categories = profile.NewTags("gastro")
				return j
			},
		},
		{
			name:   "outside the radius",
			worker: securityWorker,
			job: func() *profile.JobPosting {
				j := securityJob()
				j.Location = profile.NewLocation(53.52, 13.405)
				return j
			},
		},
		{
			name:   "missing job location",
			worker: securityWorker,
			job: func() *profile.JobPosting {
				j := securityJob()
				j.Location = profile.Location{}
				return j
			},
		},
		{
			name:   "mandatory qualifications are not consulted",
			worker: securityWorker,
			job: func() *profile.JobPosting {
				j := securityJob()
				j.Qualifications = profile.NewTags("bewacher-id")
				return j
			},
			matched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := LegacyMatch(tt.worker(), tt.job()); got != tt.matched {
				t.Fatalf("expected %v, got %v", tt.matched, got)
			}
		})
	}
}

func TestLegacyMatchNilRecords(t *testing.T) {
	t.Parallel()

	if LegacyMatch(nil, securityJob()) || LegacyMatch(securityWorker(), nil) {
		t.Fatalf("expected nil records to never match")
	}
}

func TestRankerMatchRecordsOutcome(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	reg := prometheus.NewRegistry()
	m := metrics.New()
	if err := m.Register(reg); err != nil {
		t.Fatalf("registering metrics: %v", err)
	}
	ranker := newTestRanker(t, nil, zap.New(core), m)

	far := securityJob()
	far.Location = profile.NewLocation(53.52, 13.405)

	if !ranker.Match(securityWorker(), securityJob()) {
		t.Fatalf("expected match")
	}
	if ranker.Match(securityWorker(), far) {
		t.Fatalf("expected no match")
	}

	entries := observed.FilterMessage("legacy match").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].ContextMap()["matched"] != true || entries[0].ContextMap()["job_id"] != "j1" {
		t.Fatalf("unexpected log fields: %v", entries[0].ContextMap())
	}

	expected := `
# HELP gig_matcher_legacy_match_total Total number of legacy boolean match checks by result
# TYPE gig_matcher_legacy_match_total counter
gig_matcher_legacy_match_total{result="matched"} 1
gig_matcher_legacy_match_total{result="rejected"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), metrics.MetricLegacyMatchTotal); err != nil {
		t.Fatalf("unexpected legacy match metrics: %v", err)
	}
}
