package works

import "strings"

// Relation names a relationship of Artwork that can be eager-loaded.
type Relation string

const (
	RelMediums Relation = "mediums"
	RelGenres  Relation = "genres"
	RelArtists Relation = "artists"
	RelImages  Relation = "images"
)

// AllRelations is the declared set, in the order they are loaded.
var AllRelations = []Relation{RelMediums, RelGenres, RelArtists, RelImages}

func (r Relation) Valid() bool {
	for _, known := range AllRelations {
		if r == known {
			return true
		}
	}
	return false
}

// ResolveRelations filters names down to declared relations.
// A nil slice selects every relation; unknown names are dropped silently.
func ResolveRelations(names []string) []Relation {
	if names == nil {
		out := make([]Relation, len(AllRelations))
		copy(out, AllRelations)
		return out
	}

	want := make(map[Relation]bool, len(names))
	for _, n := range names {
		r := Relation(strings.ToLower(strings.TrimSpace(n)))
		if r.Valid() {
			want[r] = true
		}
	}

	out := make([]Relation, 0, len(want))
	for _, r := range AllRelations {
		if want[r] {
			out = append(out, r)
		}
	}
	return out
}

// PlanRelations splits the declared set into what is fetched with the artwork row
// and what is fetched after it. Together they always cover every relation.
func PlanRelations(names []string) (eager, deferred []Relation) {
	eager = ResolveRelations(names)

	chosen := make(map[Relation]bool, len(eager))
	for _, r := range eager {
		chosen[r] = true
	}
	for _, r := range AllRelations {
		if !chosen[r] {
			deferred = append(deferred, r)
		}
	}
	return eager, deferred
}

// ParseRelations reads a comma separated ?load= value. An absent parameter means all.
func ParseRelations(raw string, present bool) []string {
	if !present {
		return nil
	}
	names := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
