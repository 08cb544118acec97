package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/txsn/navigator/internal/core/resource"
	"github.com/txsn/navigator/pkg/pointer"
)

func matchFixture() []*resource.Match {
	return []*resource.Match{
		{
			Resource: resource.Resource{
				ResourceID: "a",
				Title:      "Harris County Rides",
				Languages:  pointer.To("English, Spanish"),
			},
			MatchRank: 3,
		},
		{
			Resource: resource.Resource{
				ResourceID:    "b",
				Title:         "Gulf Coast Medication Fund",
				DescriptionEN: pointer.To("Copay help for oncology patients"),
			},
			MatchRank: 2,
		},
		{
			Resource: resource.Resource{
				ResourceID:   "c",
				Title:        "Texas Cancer Assistance",
				Organization: pointer.To("Fundación Esperanza"),
			},
			MatchRank: 1,
		},
	}
}

func ids(matches []*resource.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ResourceID)
	}
	return out
}

func TestApply_EmptyFilterReturnsAllInOrder(t *testing.T) {
	matches := matchFixture()

	got := resource.Apply(matches, resource.Filter{})

	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestApply_RankFilter(t *testing.T) {
	matches := matchFixture()

	got := resource.Apply(matches, resource.Filter{Rank: 3})
	assert.Equal(t, []string{"a"}, ids(got))

	got = resource.Apply(matches, resource.Filter{Rank: 1})
	assert.Equal(t, []string{"c"}, ids(got))
}

func TestApply_QueryMatchesLanguages(t *testing.T) {
	matches := matchFixture()

	got := resource.Apply(matches, resource.Filter{Query: "spanish"})

	assert.Equal(t, []string{"a"}, ids(got))
}

func TestApply_QueryIsAccentAndCaseInsensitive(t *testing.T) {
	matches := matchFixture()

	// "fundacion" must hit "Fundación" in the organization field.
	got := resource.Apply(matches, resource.Filter{Query: "fundacion"})

	assert.Equal(t, []string{"c"}, ids(got))
}

func TestApply_QueryMatchesDescription(t *testing.T) {
	matches := matchFixture()

	got := resource.Apply(matches, resource.Filter{Query: "copay"})

	assert.Equal(t, []string{"b"}, ids(got))
}

func TestApply_CombinedRankAndQuery(t *testing.T) {
	matches := matchFixture()

	// Query matches entries a and c, rank keeps only c.
	got := resource.Apply(matches, resource.Filter{Rank: 1, Query: "texas"})

	assert.Equal(t, []string{"c"}, ids(got))
}

func TestApply_NoHitsReturnsEmptyNotNil(t *testing.T) {
	got := resource.Apply(matchFixture(), resource.Filter{Query: "nonexistent"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
