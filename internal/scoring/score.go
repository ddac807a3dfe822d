// Package scoring computes the fitness score of an eligible worker/job pair.
//
// The score adds capped points for shared categories, shared qualifications and the
// activities a worker declares, then subtracts a penalty proportional to the distance:
//
//	total = max(0, categories + qualifications + activities - distance_km*penalty)
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/spigell/gig-matcher/internal/profile"
)

// Breakdown keys.
const (
	KeyCategories      = "categories"
	KeyQualifications  = "qualifications"
	KeyActivities      = "activities"
	KeyDistancePenalty = "distance_penalty"
)

var ErrInvalidWeights = errors.New("invalid scoring weights")

// Weights configures points per matching tag, caps and the distance penalty.
type Weights struct {
	CategoryPoints       float64 `mapstructure:"category-points" json:"category_points"`
	CategoryCap          float64 `mapstructure:"category-cap" json:"category_cap"`
	QualificationPoints  float64 `mapstructure:"qualification-points" json:"qualification_points"`
	QualificationCap     float64 `mapstructure:"qualification-cap" json:"qualification_cap"`
	ActivityPoints       float64 `mapstructure:"activity-points" json:"activity_points"`
	ActivityCap          float64 `mapstructure:"activity-cap" json:"activity_cap"`
	DistancePenaltyPerKm float64 `mapstructure:"distance-penalty-per-km" json:"distance_penalty_per_km"`
}

// DefaultWeights returns the production weights.
func DefaultWeights() Weights {
	return Weights{
		CategoryPoints:       10,
		CategoryCap:          20,
		QualificationPoints:  10,
		QualificationCap:     50,
		ActivityPoints:       3,
		ActivityCap:          30,
		DistancePenaltyPerKm: 0.3,
	}
}

// Validate rejects negative or non-finite weights.
func (w Weights) Validate() error {
	values := map[string]float64{
		"category-points":         w.CategoryPoints,
		"category-cap":            w.CategoryCap,
		"qualification-points":    w.QualificationPoints,
		"qualification-cap":       w.QualificationCap,
		"activity-points":         w.ActivityPoints,
		"activity-cap":            w.ActivityCap,
		"distance-penalty-per-km": w.DistancePenaltyPerKm,
	}
	for name, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidWeights, name, v)
		}
	}
	return nil
}

// Breakdown is the per-component contribution to a score. It is diagnostic output only.
type Breakdown struct {
	Categories      float64 `json:"categories"`
	Qualifications  float64 `json:"qualifications"`
	Activities      float64 `json:"activities"`
	DistancePenalty float64 `json:"distance_penalty"`
}

// Map returns the breakdown keyed by component name.
func (b Breakdown) Map() map[string]float64 {
	return map[string]float64{
		KeyCategories:      b.Categories,
		KeyQualifications:  b.Qualifications,
		KeyActivities:      b.Activities,
		KeyDistancePenalty: b.DistancePenalty,
	}
}

type Calculator struct {
	weights Weights
}

func NewCalculator(weights Weights) *Calculator {
	return &Calculator{weights: weights}
}

func (c *Calculator) Weights() Weights {
	return c.weights
}

// Score returns the total fitness score and its breakdown. The total is never negative, so callers
// that skip the eligibility filter still get a usable value. A negative distance is treated as zero;
// a NaN or infinite distance yields a zero total.
func (c *Calculator) Score(worker *profile.WorkerProfile, job *profile.JobPosting, distanceKm float64) (float64, Breakdown) {
	var b Breakdown
	if worker == nil || job == nil {
		return 0, b
	}

	w := c.weights
	b.Categories = capped(worker.Categories.Overlap(job.Categories), w.CategoryPoints, w.CategoryCap)
	b.Qualifications = capped(worker.Qualifications.Overlap(job.Qualifications), w.QualificationPoints, w.QualificationCap)
	// Jobs carry no activities, every declared activity counts.
	b.Activities = capped(worker.Activities.Len(), w.ActivityPoints, w.ActivityCap)

	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return 0, b
	}
	if distanceKm < 0 {
		distanceKm = 0
	}
	b.DistancePenalty = distanceKm * w.DistancePenaltyPerKm

	total := b.Categories + b.Qualifications + b.Activities - b.DistancePenalty
	return math.Max(0, total), b
}

func capped(count int, points, limit float64) float64 {
	return math.Min(float64(count)*points, limit)
}
