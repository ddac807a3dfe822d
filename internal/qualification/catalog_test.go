package qualification

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spigell/gig-matcher/internal/profile"
)

var names = []string{
	"Führerschein Klasse B",
	"Staplerschein",
	"Sachkunde nach § 34a GewO",
	"Gesundheitsausweis / Hygieneschulung",
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	t.Parallel()

	for _, input := range [][]string{nil, {}, {"  ", ""}} {
		if _, err := NewCatalog(input); !errors.Is(err, ErrEmptyCatalog) {
			t.Fatalf("expected ErrEmptyCatalog for %q, got %v", input, err)
		}
	}
}

func TestCatalogRequiredAndMissing(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 4 {
		t.Fatalf("expected 4 names, got %d", catalog.Len())
	}

	job := profile.NewTags("Staplerschein", "Teamfähigkeit")
	if diff := cmp.Diff([]string{"Staplerschein"}, catalog.Required(job).Slice()); diff != "" {
		t.Fatalf("unexpected required set (-want +got):\n%s", diff)
	}

	if got := catalog.Missing(job, profile.NewTags("Staplerschein")); got.Len() != 0 {
		t.Fatalf("expected nothing missing, got %v", got.Slice())
	}
	if got := catalog.Missing(job, profile.NewTags("Teamfähigkeit")); !got.Contains("Staplerschein") {
		t.Fatalf("expected Staplerschein to be missing, got %v", got.Slice())
	}

	if catalog.Contains("staplerschein") {
		t.Fatalf("expected exact name comparison")
	}
}

func TestNilCatalog(t *testing.T) {
	t.Parallel()

	var catalog *Catalog
	if catalog.Len() != 0 || catalog.Contains("Staplerschein") || catalog.Names() != nil {
		t.Fatalf("expected nil catalog to be empty")
	}
	if catalog.Required(profile.NewTags("Staplerschein")).Len() != 0 {
		t.Fatalf("expected nil catalog to require nothing")
	}
}
