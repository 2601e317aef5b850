package project

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOption string

const (
	SortDateDesc  SortOption = "date-desc"
	SortDateAsc   SortOption = "date-asc"
	SortTitleAsc  SortOption = "title-asc"
	SortTitleDesc SortOption = "title-desc"

	DefaultSort = SortDateDesc
)

// SortOptions lists the options in the order they are offered to visitors.
var SortOptions = []SortOption{SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc}

var sortLabels = map[SortOption]string{
	SortDateDesc:  "Newest First",
	SortDateAsc:   "Oldest First",
	SortTitleAsc:  "Title (A-Z)",
	SortTitleDesc: "Title (Z-A)",
}

func (o SortOption) Label() string {
	return sortLabels[o]
}

// ParseSortOption falls back to DefaultSort for anything unknown.
func ParseSortOption(s string) SortOption {
	o := SortOption(s)
	if _, ok := sortLabels[o]; ok {
		return o
	}
	return DefaultSort
}

// epoch stands in for a missing completion date, so undated projects rank
// as the oldest: last under date-desc, first under date-asc.
var epoch = time.Unix(0, 0).UTC()

func completedAt(p *Project) time.Time {
	if p.DateCompleted == nil {
		return epoch
	}
	return *p.DateCompleted
}

// Sort returns a stably sorted copy of projects. The input is left untouched.
func Sort(projects []*Project, by SortOption) []*Project {
	sorted := make([]*Project, len(projects))
	copy(sorted, projects)

	switch by {
	case SortDateAsc:
		slices.SortStableFunc(sorted, func(a, b *Project) int {
			return completedAt(a).Compare(completedAt(b))
		})
	case SortTitleAsc, SortTitleDesc:
		// Collators keep internal buffers; one per call.
		col := collate.New(language.English)
		desc := by == SortTitleDesc
		slices.SortStableFunc(sorted, func(a, b *Project) int {
			if desc {
				return col.CompareString(b.Title, a.Title)
			}
			return col.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b *Project) int {
			return completedAt(b).Compare(completedAt(a))
		})
	}
	return sorted
}
