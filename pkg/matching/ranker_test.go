package matching

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_TopN(t *testing.T) {
	tags := []string{"pothole", "drain", "light", "sidewalk"}
	orgs := []Candidate{
		{ID: "one", Category: "Parks", Tags: []string{"pothole"}},
		{ID: "two", Category: "Parks", Tags: []string{"pothole", "drain"}},
		{ID: "three", Category: "Parks", Tags: []string{"pothole", "drain", "light"}},
		{ID: "four", Category: "Parks", Tags: []string{"pothole", "drain", "light", "sidewalk"}},
		{ID: "five", Category: "Road", Tags: []string{"pothole", "drain", "light", "sidewalk"}},
	}

	got := Rank(orgs, "road", tags, 3)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"five", "four", "three"}, IDs(got))
	assert.Equal(t, 15.0, got[0].Score)
	assert.Equal(t, 12.0, got[1].Score)
	assert.Equal(t, 9.0, got[2].Score)
}

func TestRank_DefaultTopN(t *testing.T) {
	orgs := make([]Candidate, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		orgs = append(orgs, Candidate{ID: id, Category: "Road"})
	}

	assert.Len(t, Rank(orgs, "road", nil, 0), DefaultTopN)
	assert.Len(t, Rank(orgs, "road", nil, -1), DefaultTopN)
	assert.Len(t, Rank(orgs, "road", nil, 10), 5)
}

func TestRank_MinScore(t *testing.T) {
	orgs := []Candidate{
		{ID: "bonus-only", Category: "Health", Tags: []string{"road"}},
		{ID: "partial-category", Category: "Road Maintenance"},
		{ID: "exact-category", Category: "Road"},
		{ID: "unrelated", Category: "Health"},
	}

	got := Rank(orgs, "road", []string{}, DefaultTopN)

	require.Len(t, got, 1)
	assert.Equal(t, "exact-category", got[0].Candidate.ID)
}

func TestRank_StableTies(t *testing.T) {
	a := Candidate{ID: "a", Category: "Road"}
	b := Candidate{ID: "b", Category: "Road"}

	assert.Equal(t, []string{"a", "b"}, IDs(Rank([]Candidate{a, b}, "road", nil, 3)))
	assert.Equal(t, []string{"b", "a"}, IDs(Rank([]Candidate{b, a}, "road", nil, 3)))
}

func TestRank_Empty(t *testing.T) {
	got := Rank(nil, "road", []string{"pothole"}, 3)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRank_Deterministic(t *testing.T) {
	orgs := []Candidate{
		{ID: "sanitation", Category: "Sanitation", Tags: []string{"garbage", "sanitation"}},
		{ID: "roads", Category: "Infrastructure", Tags: []string{"road", "pothole"}},
		{ID: "ict", Category: "ICT", Tags: []string{"innovation", "internet"}},
	}
	tags := ExtractTags("Trash piling up on the street next to the broken pothole")

	first := Rank(orgs, "Infrastructure", tags, 3)
	second := Rank(orgs, "Infrastructure", tags, 3)

	assert.Equal(t, first, second)
	require.NotEmpty(t, first)
	assert.Equal(t, "roads", first[0].Candidate.ID)
}

func TestRank_Concurrent(t *testing.T) {
	orgs := []Candidate{
		{ID: "roads", Category: "Infrastructure", Tags: []string{"road", "pothole"}},
		{ID: "sanitation", Category: "Sanitation", Tags: []string{"garbage"}},
	}
	want := Rank(orgs, "Sanitation", []string{"trash", "pothole"}, 3)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Rank(orgs, "Sanitation", []string{"trash", "pothole"}, 3))
		}()
	}
	wg.Wait()
}
