package profile

import (
	"encoding/json"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Tags is a set of tag names. A nil Tags behaves as an empty set.
type Tags map[string]struct{}

// NewTags builds a set from the provided values. Values are trimmed and empty ones are dropped.
// The returned set is never nil.
func NewTags(values ...string) Tags {
	tags := make(Tags, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		tags[v] = struct{}{}
	}
	return tags
}

func (t Tags) Len() int {
	return len(t)
}

func (t Tags) Contains(tag string) bool {
	_, ok := t[tag]
	return ok
}

// Intersect returns the tags present in both sets. Comparison is exact.
func (t Tags) Intersect(other Tags) Tags {
	small, large := t, other
	if len(large) < len(small) {
		small, large = large, small
	}

	result := make(Tags)
	for tag := range small {
		if large.Contains(tag) {
			result[tag] = struct{}{}
		}
	}
	return result
}

// Overlap returns the number of tags shared with other.
func (t Tags) Overlap(other Tags) int {
	return t.Intersect(other).Len()
}

// Minus returns the tags of t that are not present in other.
func (t Tags) Minus(other Tags) Tags {
	result := make(Tags)
	for tag := range t {
		if !other.Contains(tag) {
			result[tag] = struct{}{}
		}
	}
	return result
}

// Union returns a new set holding the tags of every provided set.
func Union(sets ...Tags) Tags {
	result := make(Tags)
	for _, set := range sets {
		for tag := range set {
			result[tag] = struct{}{}
		}
	}
	return result
}

// Fold returns a copy of the set with every tag case folded, so that
// "Staplerschein" and "STAPLERSCHEIN" collapse into one entry.
func (t Tags) Fold() Tags {
	// Casers keep state and must not be shared between goroutines.
	caser := cases.Fold()
	result := make(Tags, len(t))
	for tag := range t {
		result[caser.String(tag)] = struct{}{}
	}
	return result
}

// Slice returns the tags sorted alphabetically.
func (t Tags) Slice() []string {
	items := make([]string, 0, len(t))
	for tag := range t {
		items = append(items, tag)
	}
	sort.Strings(items)
	return items
}

func (t Tags) String() string {
	return strings.Join(t.Slice(), ",")
}

func (t Tags) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Slice())
}

func (t *Tags) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*t = NewTags(items...)
	return nil
}
