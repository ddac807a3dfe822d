package matching

import (
	"go.uber.org/zap"

	"github.com/spigell/gig-matcher/internal/profile"
)

// LegacyMatch is the boolean-only match kept for older callers. The pair matches when the
// worker and job share a category, the job lies within the worker's radius and, if the job
// declares free-form tags, the worker selected at least one of them.
//
// Free-form tags are compared case-insensitively, unlike the exact comparison of the scored path.
// Mandatory qualifications are not consulted.
func LegacyMatch(worker *profile.WorkerProfile, job *profile.JobPosting) bool {
	if worker == nil || job == nil {
		return false
	}

	if worker.Categories.Overlap(job.Categories) == 0 {
		return false
	}

	distance, err := pairDistance(worker, job)
	if err != nil || !(distance <= worker.RadiusKm) {
		return false
	}

	if job.Tags.Len() > 0 && job.Tags.Fold().Overlap(worker.SelectedTags.Fold()) == 0 {
		return false
	}

	return true
}

// Match runs LegacyMatch and records the outcome.
func (r *Ranker) Match(worker *profile.WorkerProfile, job *profile.JobPosting) bool {
	matched := LegacyMatch(worker, job)
	r.deps.Metrics.IncLegacyMatch(matched)
	r.deps.Logger.Debug("legacy match", append(pairFields(pair{worker: worker, job: job}), zap.Bool("matched", matched))...)
	return matched
}
