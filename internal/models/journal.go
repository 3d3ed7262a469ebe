// ABOUTME: JournalEntry model and the closed mood enumeration
// ABOUTME: Entries are immutable once created and ordered newest first
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Mood is the closed set of labels an entry can carry.
type Mood string

const (
	MoodPeaceful   Mood = "Peaceful"
	MoodStrong     Mood = "Strong"
	MoodStruggling Mood = "Struggling"
	MoodInCrisis   Mood = "In Crisis"
	MoodGrateful   Mood = "Grateful"
)

// Moods lists every mood in display order.
func Moods() []Mood {
	return []Mood{MoodPeaceful, MoodStrong, MoodStruggling, MoodInCrisis, MoodGrateful}
}

// Valid reports whether m is a member of the closed mood set.
func (m Mood) Valid() bool {
	switch m {
	case MoodPeaceful, MoodStrong, MoodStruggling, MoodInCrisis, MoodGrateful:
		return true
	}
	return false
}

// JournalEntry is immutable once created; it is only appended to the
// profile or filtered for display, never edited in place.
type JournalEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
}

// NewJournalEntry creates an entry with a fresh id and timestamp.
func NewJournalEntry(text string, mood Mood, now time.Time) JournalEntry {
	return JournalEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Mood:      mood,
		CreatedAt: now,
	}
}

// NewReflectionEntry synthesizes a journal entry from a scripture
// reflection. The mood is fixed to Grateful and the body is templated
// from the source verse.
func NewReflectionEntry(reference, reflection string, now time.Time) JournalEntry {
	return NewJournalEntry(
		fmt.Sprintf("Reflection on %s:\n%s", reference, reflection),
		MoodGrateful,
		now,
	)
}

// PrependEntry returns the sequence with e in front, preserving the
// newest-first ordering. The input slice is not modified.
func PrependEntry(entries []JournalEntry, e JournalEntry) []JournalEntry {
	out := make([]JournalEntry, 0, len(entries)+1)
	out = append(out, e)
	out = append(out, entries...)
	return out
}

// EntriesByMood returns the subset with the given mood in original
// relative order.
func EntriesByMood(entries []JournalEntry, mood Mood) []JournalEntry {
	var out []JournalEntry
	for _, e := range entries {
		if e.Mood == mood {
			out = append(out, e)
		}
	}
	return out
}
