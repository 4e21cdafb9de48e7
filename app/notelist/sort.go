package notelist

import (
	"sort"
	"time"

	"noteboard/app/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names a sort strategy for the note list.
type SortKey string

const (
	SortNone      SortKey = "none"
	SortByDate    SortKey = "by date"
	SortByTitle   SortKey = "by title"
	SortByBody    SortKey = "by body"
	SortByCreator SortKey = "by creator"
)

// SortKeys lists the selectable strategies in display order.
var SortKeys = []SortKey{SortNone, SortByDate, SortByTitle, SortByBody, SortByCreator}

// Sort returns the notes ordered by the given strategy. The input slice is
// never mutated; sorting always works on a copy so the source-of-truth
// collection stays intact for subsequent filters and renders. The
// descending flag applies to every strategy; under SortNone it reverses
// the list instead of comparing.
func Sort(notes []*models.Note, key SortKey, descending bool) []*models.Note {
	sorted := make([]*models.Note, len(notes))
	copy(sorted, notes)

	if key == SortNone || key == "" {
		if descending {
			reverse(sorted)
		}
		return sorted
	}

	less := lessFunc(key)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(key SortKey) func(a, b *models.Note) bool {
	switch key {
	case SortByDate:
		return func(a, b *models.Note) bool {
			return sortDate(a).Before(sortDate(b))
		}
	case SortByTitle:
		return stringLess(func(n *models.Note) string { return n.Title })
	case SortByBody:
		return stringLess(func(n *models.Note) string { return n.Body })
	case SortByCreator:
		return stringLess(func(n *models.Note) string { return n.Creator() })
	default:
		return func(a, b *models.Note) bool { return false }
	}
}

// sortDate compares by UpdatedAt when set, falling back to InsertedAt.
func sortDate(n *models.Note) time.Time {
	if !n.UpdatedAt.IsZero() {
		return n.UpdatedAt
	}
	return n.InsertedAt
}

// stringLess builds a locale-aware comparator on a string field. A fresh
// collator per sort: collators are not safe for concurrent use.
func stringLess(field func(n *models.Note) string) func(a, b *models.Note) bool {
	c := collate.New(language.Und, collate.Loose)
	return func(a, b *models.Note) bool {
		return c.CompareString(field(a), field(b)) < 0
	}
}

func reverse(notes []*models.Note) {
	for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
		notes[i], notes[j] = notes[j], notes[i]
	}
}
