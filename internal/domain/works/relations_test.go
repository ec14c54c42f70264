package works

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRelations_NilMeansAll(t *testing.T) {
	assert.Equal(t, AllRelations, ResolveRelations(nil))
}

func TestResolveRelations_DropsUnknown(t *testing.T) {
	got := ResolveRelations([]string{"images", "notes", "Mediums", "mediums", ""})
	assert.Equal(t, []Relation{RelMediums, RelImages}, got)
}

func TestResolveRelations_EmptyMeansNone(t *testing.T) {
	assert.Empty(t, ResolveRelations([]string{}))
	assert.Empty(t, ResolveRelations([]string{"bogus"}))
}

func TestPlanRelations_CoversEverything(t *testing.T) {
	for _, names := range [][]string{nil, {}, {"mediums"}, {"genres", "artists"}, {"x"}} {
		eager, deferred := PlanRelations(names)
		assert.ElementsMatch(t, AllRelations, append(append([]Relation{}, eager...), deferred...), "%v", names)
	}

	eager, deferred := PlanRelations([]string{"mediums"})
	assert.Equal(t, []Relation{RelMediums}, eager)
	assert.Equal(t, []Relation{RelGenres, RelArtists, RelImages}, deferred)
}

func TestParseRelations(t *testing.T) {
	assert.Nil(t, ParseRelations("", false))
	assert.Equal(t, []string{}, ParseRelations("", true))
	assert.Equal(t, []string{"mediums", "genres"}, ParseRelations(" mediums, ,genres", true))
}
