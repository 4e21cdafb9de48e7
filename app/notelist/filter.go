// Package notelist holds the client-side note collection logic: phrase
// filtering, keyed sorting and the locally held list cache.
package notelist

import (
	"strings"

	"noteboard/app/models"
)

// Filter returns the notes matching the given phrase. Every
// whitespace-separated word of the phrase must appear as a substring of
// the lowercased concatenation of the note's title and body; word order
// does not matter. An empty phrase matches everything.
func Filter(notes []*models.Note, phrase string) []*models.Note {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) == 0 {
		return notes
	}

	var matched []*models.Note
	for _, note := range notes {
		haystack := strings.ToLower(note.Title + note.Body)
		if containsAll(haystack, words) {
			matched = append(matched, note)
		}
	}
	return matched
}

func containsAll(haystack string, words []string) bool {
	for _, word := range words {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}
