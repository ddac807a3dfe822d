// Package qualification holds the catalog of mandatory qualifications: licenses, safety
// certifications and attestations that a worker must hold whenever a job asks for them.
package qualification

import (
	"errors"

	"github.com/spigell/gig-matcher/internal/profile"
)

var ErrEmptyCatalog = errors.New("mandatory qualification catalog is empty")

// Catalog is an immutable set of mandatory qualification names. Names are compared exactly.
type Catalog struct {
	names profile.Tags
}

// NewCatalog builds a catalog from configured names. An empty catalog is rejected: it would
// silently disable mandatory gating for every job.
func NewCatalog(names []string) (*Catalog, error) {
	tags := profile.NewTags(names...)
	if tags.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{names: tags}, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.names.Len()
}

func (c *Catalog) Contains(name string) bool {
	return c != nil && c.names.Contains(name)
}

// Required returns the qualifications of a job that are mandatory.
func (c *Catalog) Required(jobQualifications profile.Tags) profile.Tags {
	if c == nil {
		return profile.NewTags()
	}
	return jobQualifications.Intersect(c.names)
}

// Missing returns the mandatory qualifications required by the job that the worker does not hold.
func (c *Catalog) Missing(jobQualifications, workerQualifications profile.Tags) profile.Tags {
	return c.Required(jobQualifications).Minus(workerQualifications)
}

// Names returns the catalog entries sorted alphabetically.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return c.names.Slice()
}
