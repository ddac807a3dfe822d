package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	if err := New().Register(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := New().Register(reg); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestObserve(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveQuery("jobs", 10, 3)
	m.ObserveQuery("jobs", 5, 0)
	m.IncRejections("jobs", "location")
	m.IncRejections("jobs", "location")
	m.IncRejections("workers", "category")
	m.IncLegacyMatch(true)
	m.IncLegacyMatch(false)
	m.IncLegacyMatch(false)

	if got := testutil.ToFloat64(m.queries.WithLabelValues("jobs")); got != 2 {
		t.Fatalf("expected 2 queries, got %v", got)
	}
	if got := testutil.ToFloat64(m.rejections.WithLabelValues("jobs", "location")); got != 2 {
		t.Fatalf("expected 2 location rejections, got %v", got)
	}
	if got := testutil.ToFloat64(m.rejections.WithLabelValues("workers", "category")); got != 1 {
		t.Fatalf("expected 1 category rejection, got %v", got)
	}
	if got := testutil.ToFloat64(m.legacyMatch.WithLabelValues("rejected")); got != 2 {
		t.Fatalf("expected 2 rejected legacy matches, got %v", got)
	}
	if got := testutil.CollectAndCount(m.candidates); got != 1 {
		t.Fatalf("expected 1 candidates series, got %d", got)
	}
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveQuery("jobs", 1, 1)
	m.IncRejections("jobs", "location")
	m.IncLegacyMatch(true)
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New()
	if err := m.Register(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.ObserveQuery("workers", 4, 2)

	path := filepath.Join(t.TempDir(), "gig-matcher.prom")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading metrics file: %v", err)
	}
	if !strings.Contains(string(data), MetricQueriesTotal+`{direction="workers"} 1`) {
		t.Fatalf("expected queries counter in output, got:\n%s", data)
	}
}
