// ABOUTME: Scripture verse model with the closed category set
// ABOUTME: Verses feed the scripture bank screen and reflection entries
package models

// VerseCategory is the closed set of scripture bank categories.
type VerseCategory string

const (
	VersePromises VerseCategory = "Promises"
	VerseComfort  VerseCategory = "Comfort"
	VerseStrength VerseCategory = "Strength"
	VerseGuidance VerseCategory = "Guidance"
)

// VerseCategories lists every category in display order.
func VerseCategories() []VerseCategory {
	return []VerseCategory{VersePromises, VerseComfort, VerseStrength, VerseGuidance}
}

// Valid reports whether c is a known category.
func (c VerseCategory) Valid() bool {
	for _, known := range VerseCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Verse is one scripture bank entry.
type Verse struct {
	ID        string
	Reference string
	Text      string
	Category  VerseCategory
}

// VersesByCategory returns the subset in the given category, in
// original order.
func VersesByCategory(verses []Verse, c VerseCategory) []Verse {
	var out []Verse
	for _, v := range verses {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}
