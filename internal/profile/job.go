package profile

// JobPosting is an open job as supplied by the job service.
type JobPosting struct {
	ID             string   `json:"id"`
	EmployerID     string   `json:"employer_id"`
	Location       Location `json:"location"`
	Categories     Tags     `json:"categories"`
	Qualifications Tags     `json:"qualifications"`
	// Tags are free-form tags, only consulted by the legacy boolean match.
	Tags Tags `json:"tags,omitempty"`

	// Older job records describe requirements with these instead of categories and qualifications.
	RequiredAllTags Tags `json:"required_all_tags,omitempty"`
	RequiredAnyTags Tags `json:"required_any_tags,omitempty"`
}

// UsesLegacyTags reports whether the job is an older record that describes its
// requirements only through required_all_tags / required_any_tags.
// A job that also declares categories or qualifications is treated as a current record.
func (j *JobPosting) UsesLegacyTags() bool {
	if j.RequiredAllTags.Len() == 0 && j.RequiredAnyTags.Len() == 0 {
		return false
	}
	return j.Categories.Len() == 0 && j.Qualifications.Len() == 0
}

type Jobs struct {
	Items []*JobPosting
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *JobPosting {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

func (j *Jobs) IDs() []string {
	ids := make([]string, 0, len(j.Items))
	for _, job := range j.Items {
		ids = append(ids, job.ID)
	}
	return ids
}

// Exclude removes jobs posted by the given employers and returns the ids of removed jobs.
// Order of the remaining jobs is preserved.
func (j *Jobs) Exclude(employers []string) []string {
	if len(employers) == 0 {
		return nil
	}

	drop := NewTags(employers...)
	var excluded []string
	kept := j.Items[:0]
	for _, job := range j.Items {
		if drop.Contains(job.EmployerID) {
			excluded = append(excluded, job.ID)
			continue
		}
		kept = append(kept, job)
	}
	j.Items = kept
	return excluded
}
