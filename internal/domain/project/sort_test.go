package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func ids(projects []*Project) []int64 {
	out := make([]int64, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func fixtures() []*Project {
	return []*Project{
		{ID: 1, Title: "zeta", DateCompleted: date("2023-05-01")},
		{ID: 2, Title: "Alpha", DateCompleted: nil},
		{ID: 3, Title: "Émile", DateCompleted: date("2024-01-01")},
		{ID: 4, Title: "beta", DateCompleted: date("2022-11-30")},
		{ID: 5, Title: "delta", DateCompleted: date("2024-01-01")},
	}
}

func TestSortDatedBeforeUndatedWhenNewestFirst(t *testing.T) {
	projects := []*Project{
		{ID: 1, Title: "Undated"},
		{ID: 2, Title: "Dated", DateCompleted: date("2024-01-01")},
	}

	sorted := Sort(projects, SortDateDesc)

	assert.Equal(t, []int64{2, 1}, ids(sorted))
}

func TestSortByDate(t *testing.T) {
	desc := Sort(fixtures(), SortDateDesc)
	// 3 and 5 share a date and keep their input order.
	assert.Equal(t, []int64{3, 5, 1, 4, 2}, ids(desc))

	asc := Sort(fixtures(), SortDateAsc)
	assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(asc))
}

func TestSortDescThenAscReversesDateOrder(t *testing.T) {
	desc := Sort(fixtures(), SortDateDesc)
	asc := Sort(desc, SortDateAsc)

	require.Len(t, asc, len(desc))
	for i := range desc {
		mirror := asc[len(asc)-1-i]
		assert.True(t, completedAt(desc[i]).Equal(completedAt(mirror)),
			"position %d: %v vs %v", i, completedAt(desc[i]), completedAt(mirror))
	}
}

func TestSortByTitleIsLocaleAware(t *testing.T) {
	asc := Sort(fixtures(), SortTitleAsc)
	assert.Equal(t, []string{"Alpha", "beta", "delta", "Émile", "zeta"}, titles(asc))

	desc := Sort(fixtures(), SortTitleDesc)
	assert.Equal(t, []string{"zeta", "Émile", "delta", "beta", "Alpha"}, titles(desc))
}

func titles(projects []*Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Title
	}
	return out
}

func TestSortIsIdempotent(t *testing.T) {
	for _, opt := range SortOptions {
		t.Run(string(opt), func(t *testing.T) {
			once := Sort(fixtures(), opt)
			twice := Sort(once, opt)
			assert.Equal(t, ids(once), ids(twice))
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := fixtures()
	before := ids(input)

	for _, opt := range SortOptions {
		_ = Sort(input, opt)
		assert.Equal(t, before, ids(input), "input reordered by %s", opt)
	}
}

func TestSortEmpty(t *testing.T) {
	assert.Empty(t, Sort(nil, SortDateDesc))
	assert.NotNil(t, Sort(nil, SortTitleAsc))
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortTitleDesc, ParseSortOption("title-desc"))
	assert.Equal(t, SortDateAsc, ParseSortOption("date-asc"))
	assert.Equal(t, DefaultSort, ParseSortOption(""))
	assert.Equal(t, DefaultSort, ParseSortOption("price-asc"))
	assert.Equal(t, "Oldest First", SortDateAsc.Label())
}

func TestTagListTrimsAndDropsBlanks(t *testing.T) {
	p := &Project{Tags: " Go, React ,, PostgreSQL ,"}
	assert.Equal(t, []string{"Go", "React", "PostgreSQL"}, p.TagList())

	empty := &Project{Tags: "  "}
	assert.Empty(t, empty.TagList())
}

func TestSummaryAndYear(t *testing.T) {
	short := "Short"
	blank := ""
	assert.Equal(t, "Short", (&Project{Description: "Long", ShortDescription: &short}).Summary())
	assert.Equal(t, "Long", (&Project{Description: "Long", ShortDescription: &blank}).Summary())
	assert.Equal(t, "Long", (&Project{Description: "Long"}).Summary())

	assert.Equal(t, 2024, (&Project{DateCompleted: date("2024-06-15")}).Year())
	assert.Equal(t, 0, (&Project{}).Year())
}
