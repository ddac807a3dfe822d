package profile

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"go.yaml.in/yaml/v3"
)

type workerRecord struct {
	ID             string   `mapstructure:"id"`
	Lat            any      `mapstructure:"lat"`
	Lon            any      `mapstructure:"lon"`
	RadiusKm       float64  `mapstructure:"radius_km"`
	Categories     []string `mapstructure:"categories"`
	Qualifications []string `mapstructure:"qualifications"`
	Activities     []string `mapstructure:"activities"`
	SelectedTags   []string `mapstructure:"selected_tags"`
}

type jobRecord struct {
	ID              string   `mapstructure:"id"`
	EmployerID      string   `mapstructure:"employer_id"`
	Lat             any      `mapstructure:"lat"`
	Lon             any      `mapstructure:"lon"`
	Categories      []string `mapstructure:"categories"`
	Qualifications  []string `mapstructure:"qualifications"`
	Tags            []string `mapstructure:"tags"`
	RequiredAllTags []string `mapstructure:"required_all_tags"`
	RequiredAnyTags []string `mapstructure:"required_any_tags"`
}

// LoadWorkers reads worker profiles from a YAML or JSON file holding a list of records.
func LoadWorkers(path string) (*Workers, error) {
	items, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	return DecodeWorkers(items)
}

// DecodeWorkers converts loosely typed records into worker profiles.
// Unreadable coordinates do not fail decoding, the location is marked malformed instead.
func DecodeWorkers(items []map[string]any) (*Workers, error) {
	workers := &Workers{Items: make([]*WorkerProfile, 0, len(items))}
	for idx, item := range items {
		var rec workerRecord
		if err := decode(item, &rec); err != nil {
			return nil, fmt.Errorf("decoding worker #%d: %w", idx, err)
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("worker #%d: id is required", idx)
		}
		if rec.RadiusKm < 0 {
			return nil, fmt.Errorf("worker %s: radius_km must not be negative, got %v", rec.ID, rec.RadiusKm)
		}

		workers.Items = append(workers.Items, &WorkerProfile{
			ID:             rec.ID,
			Location:       locationFromRaw(rec.Lat, rec.Lon),
			RadiusKm:       rec.RadiusKm,
			Categories:     NewTags(rec.Categories...),
			Qualifications: NewTags(rec.Qualifications...),
			Activities:     NewTags(rec.Activities...),
			SelectedTags:   NewTags(rec.SelectedTags...),
		})
	}
	return workers, nil
}

// LoadJobs reads job postings from a YAML or JSON file holding a list of records.
func LoadJobs(path string) (*Jobs, error) {
	items, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	return DecodeJobs(items)
}

// DecodeJobs converts loosely typed records into job postings.
func DecodeJobs(items []map[string]any) (*Jobs, error) {
	jobs := &Jobs{Items: make([]*JobPosting, 0, len(items))}
	for idx, item := range items {
		var rec jobRecord
		if err := decode(item, &rec); err != nil {
			return nil, fmt.Errorf("decoding job #%d: %w", idx, err)
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("job #%d: id is required", idx)
		}

		jobs.Items = append(jobs.Items, &JobPosting{
			ID:              rec.ID,
			EmployerID:      rec.EmployerID,
			Location:        locationFromRaw(rec.Lat, rec.Lon),
			Categories:      NewTags(rec.Categories...),
			Qualifications:  NewTags(rec.Qualifications...),
			Tags:            NewTags(rec.Tags...),
			RequiredAllTags: NewTags(rec.RequiredAllTags...),
			RequiredAnyTags: NewTags(rec.RequiredAnyTags...),
		})
	}
	return jobs, nil
}

func readRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records from %q: %w", path, err)
	}

	// JSON documents are valid YAML, so one parser serves both formats.
	var items []map[string]any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing records from %q: %w", path, err)
	}
	return items, nil
}

func decode(input map[string]any, output any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           output,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
