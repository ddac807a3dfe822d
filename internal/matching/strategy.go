package matching

import (
	"fmt"
	"strings"

	"github.com/spigell/gig-matcher/internal/profile"
	"github.com/spigell/gig-matcher/internal/qualification"
)

// Gate names reported in decisions, logs and metrics.
const (
	GateRecord        = "record"
	GateLocation      = "location"
	GateCategory      = "category"
	GateQualification = "mandatory_qualification"
	GateRequiredAll   = "required_all_tags"
	GateRequiredAny   = "required_any_tags"
)

// Strategy names.
const (
	StrategyScored = "scored"
	StrategyLegacy = "legacy_tags"
)

// Strategy evaluates the requirement gates of a pair once the location gate has passed.
// It returns the failed gate and a reason, or ok=true.
type Strategy interface {
	Name() string
	Gates() []string
	Check(worker *profile.WorkerProfile, job *profile.JobPosting) (gate string, reason string, ok bool)
}

// scoredStrategy applies the category and mandatory qualification gates. Tags are compared exactly.
type scoredStrategy struct {
	catalog *qualification.Catalog
}

func (s *scoredStrategy) Name() string { return StrategyScored }

func (s *scoredStrategy) Gates() []string { return []string{GateCategory, GateQualification} }

func (s *scoredStrategy) Check(worker *profile.WorkerProfile, job *profile.JobPosting) (string, string, bool) {
	// Empty sets never match: there is no wildcard category.
	if worker.Categories.Overlap(job.Categories) == 0 {
		return GateCategory, "no shared category", false
	}

	// Non-mandatory qualifications only raise the score.
	if missing := s.catalog.Missing(job.Qualifications, worker.Qualifications); missing.Len() > 0 {
		return GateQualification, fmt.Sprintf("missing mandatory qualifications: %s", strings.Join(missing.Slice(), ", ")), false
	}

	return "", "", true
}

// legacyTagStrategy serves older job records that only carry required_all_tags and
// required_any_tags. Tags are compared case-insensitively against everything the worker declares.
type legacyTagStrategy struct{}

func (s *legacyTagStrategy) Name() string { return StrategyLegacy }

func (s *legacyTagStrategy) Gates() []string { return []string{GateRequiredAll, GateRequiredAny} }

func (s *legacyTagStrategy) Check(worker *profile.WorkerProfile, job *profile.JobPosting) (string, string, bool) {
	held := worker.AllTags().Fold()

	if missing := job.RequiredAllTags.Fold().Minus(held); missing.Len() > 0 {
		return GateRequiredAll, fmt.Sprintf("missing required tags: %s", strings.Join(missing.Slice(), ", ")), false
	}

	if job.RequiredAnyTags.Len() > 0 && job.RequiredAnyTags.Fold().Overlap(held) == 0 {
		return GateRequiredAny, "none of the accepted tags is held", false
	}

	return "", "", true
}
