package matching

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spigell/gig-matcher/internal/geo"
	"github.com/spigell/gig-matcher/internal/profile"
	"github.com/spigell/gig-matcher/internal/qualification"
)

var ErrNilCatalog = errors.New("mandatory qualification catalog is required")

// Decision is the outcome of the eligibility gates for a pair.
type Decision struct {
	Eligible bool
	// Gate is the first gate that failed, empty when eligible.
	Gate   string
	Reason string
	// DistanceKm is set once both locations are readable.
	DistanceKm float64
	Strategy   string
}

// Status describes a strategy and its gates.
type Status struct {
	Name    string
	Gates   []string
	Details map[string]string
}

// Filter applies the hard eligibility gates to worker/job pairs. It is safe for concurrent use.
//
// Gates run cheapest and most selective first and stop at the first failure:
// location, then the requirement gates of the strategy selected for the job.
type Filter struct {
	catalog *qualification.Catalog
	scored  Strategy
	legacy  Strategy
}

// NewFilter creates a filter gated by the provided mandatory qualification catalog.
func NewFilter(catalog *qualification.Catalog) (*Filter, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if catalog.Len() == 0 {
		return nil, qualification.ErrEmptyCatalog
	}

	return &Filter{
		catalog: catalog,
		scored:  &scoredStrategy{catalog: catalog},
		legacy:  &legacyTagStrategy{},
	}, nil
}

// StrategyFor selects the strategy by the fields the job populates.
func (f *Filter) StrategyFor(job *profile.JobPosting) Strategy {
	if job.UsesLegacyTags() {
		return f.legacy
	}
	return f.scored
}

// IsEligible reports whether the pair passes every gate.
func (f *Filter) IsEligible(worker *profile.WorkerProfile, job *profile.JobPosting) bool {
	return f.Check(worker, job).Eligible
}

// Check runs the gates and reports the first failure. It never fails loudly: unusable
// location data makes the pair ineligible.
func (f *Filter) Check(worker *profile.WorkerProfile, job *profile.JobPosting) Decision {
	if worker == nil || job == nil {
		return Decision{Gate: GateRecord, Reason: "worker or job record is missing"}
	}

	distance, err := pairDistance(worker, job)
	if err != nil {
		return Decision{Gate: GateLocation, Reason: err.Error()}
	}

	// The worker's radius governs regardless of the query direction.
	// Written as a negated <= so that a NaN radius is rejected as well.
	if !(distance <= worker.RadiusKm) {
		return Decision{
			Gate:       GateLocation,
			Reason:     fmt.Sprintf("distance %.2f km exceeds radius %.2f km", distance, worker.RadiusKm),
			DistanceKm: distance,
		}
	}

	strategy := f.StrategyFor(job)
	if gate, reason, ok := strategy.Check(worker, job); !ok {
		return Decision{Gate: gate, Reason: reason, DistanceKm: distance, Strategy: strategy.Name()}
	}

	return Decision{Eligible: true, DistanceKm: distance, Strategy: strategy.Name()}
}

// Describe returns status entries for the strategies of the filter.
func (f *Filter) Describe() []Status {
	return []Status{
		{
			Name:  f.scored.Name(),
			Gates: append([]string{GateLocation}, f.scored.Gates()...),
			Details: map[string]string{
				"mandatory_qualifications": strconv.Itoa(f.catalog.Len()),
			},
		},
		{
			Name:  f.legacy.Name(),
			Gates: append([]string{GateLocation}, f.legacy.Gates()...),
		},
	}
}

func (f *Filter) Catalog() *qualification.Catalog {
	return f.catalog
}

func pairDistance(worker *profile.WorkerProfile, job *profile.JobPosting) (float64, error) {
	wLat, wLon, err := worker.Location.Coordinates()
	if err != nil {
		return 0, fmt.Errorf("worker %s: %w", worker.ID, err)
	}
	jLat, jLon, err := job.Location.Coordinates()
	if err != nil {
		return 0, fmt.Errorf("job %s: %w", job.ID, err)
	}
	return geo.DistanceKm(wLat, wLon, jLat, jLon), nil
}
