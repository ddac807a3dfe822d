package matching

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spigell/gig-matcher/internal/profile"
	"github.com/spigell/gig-matcher/internal/scoring"
)

// Direction tells which side of the pair is being ranked.
type Direction string

const (
	// DirectionJobs ranks jobs for one worker.
	DirectionJobs Direction = "jobs"
	// DirectionWorkers ranks workers for one job.
	DirectionWorkers Direction = "workers"
)

// Candidate is a scored worker/job pair. It is derived per query and never persisted.
type Candidate struct {
	// ID is the id of the ranked entity: the job for DirectionJobs, the worker for DirectionWorkers.
	ID         string                 `json:"id"`
	Worker     *profile.WorkerProfile `json:"worker"`
	Job        *profile.JobPosting    `json:"job"`
	DistanceKm float64                `json:"distance_km"`
	Eligible   bool                   `json:"eligible"`
	Score      float64                `json:"score"`
	Breakdown  scoring.Breakdown      `json:"breakdown"`
	Strategy   string                 `json:"strategy"`
}

// Results is the ranked output of one query, best candidate first.
type Results struct {
	Direction Direction    `json:"direction"`
	SubjectID string       `json:"subject_id"`
	Items     []*Candidate `json:"items"`
}

// Stats describes how the candidate set shrank during a query.
type Stats struct {
	Initial int
	Dropped int
	Left    int
	// RejectedBy counts ineligible pairs per failed gate.
	RejectedBy map[string]int
	// BelowMinScore counts eligible pairs dropped by the minimum score option.
	BelowMinScore int
	// OverLimit counts eligible pairs cut by the result limit.
	OverLimit int
}

func (r *Results) Len() int {
	return len(r.Items)
}

// IDs returns the ranked entity ids in rank order.
func (r *Results) IDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, c := range r.Items {
		ids = append(ids, c.ID)
	}
	return ids
}

func (r *Results) FindByID(id string) *Candidate {
	for _, c := range r.Items {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ReportByEmployer groups the ranked candidates by the employer of the job.
func (r *Results) ReportByEmployer() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for rank, c := range r.Items {
		key := c.Job.EmployerID
		if key == "" {
			key = "(unknown employer)"
		}
		report[key] = append(report[key], map[string]string{
			"rank":             fmt.Sprintf("%d", rank+1),
			"job":              c.Job.ID,
			"worker":           c.Worker.ID,
			"score":            fmt.Sprintf("%.2f", c.Score),
			"distance_km":      fmt.Sprintf("%.2f", c.DistanceKm),
			"categories":       fmt.Sprintf("%.0f", c.Breakdown.Categories),
			"qualifications":   fmt.Sprintf("%.0f", c.Breakdown.Qualifications),
			"activities":       fmt.Sprintf("%.0f", c.Breakdown.Activities),
			"distance_penalty": fmt.Sprintf("%.2f", c.Breakdown.DistancePenalty),
		})
	}
	return report
}

func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
