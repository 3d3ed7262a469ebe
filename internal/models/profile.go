// ABOUTME: UserProfile is the single persisted record for the local user
// ABOUTME: Identity, sober date, journal, preferences, and sponsor links in one JSON value
package models

import (
	"time"
)

// SchemaVersion is written into every persisted profile so a future
// schema change can migrate forward. The source app had no version
// field; the rewrite adds one.
const SchemaVersion = 1

// TitlePrefix is the optional honorific shown before the user's name.
type TitlePrefix string

const (
	TitleSister  TitlePrefix = "Sister"
	TitleBrother TitlePrefix = "Brother"
	TitleNone    TitlePrefix = ""
)

// Valid reports whether t is a member of the closed title set.
func (t TitlePrefix) Valid() bool {
	switch t {
	case TitleSister, TitleBrother, TitleNone:
		return true
	}
	return false
}

// DefaultAvatarColor is the fixed avatar token assigned at login.
const DefaultAvatarColor = "indigo"

// Goal is a free-form recovery goal. Largely unused by current screens
// but persisted with the profile.
type Goal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// UserProfile is the sole persisted entity. The profile store is its
// only writer; screens hold a read-only copy and request updates
// through mutations.
type UserProfile struct {
	SchemaVersion int         `json:"schema_version"`
	Name          string      `json:"name"`
	TitlePrefix   TitlePrefix `json:"title_prefix"`
	SoberDate     time.Time   `json:"sober_date"`
	Bio           string      `json:"bio"`
	Goals         []Goal      `json:"goals"`
	// JournalEntries is ordered newest first.
	JournalEntries   []JournalEntry `json:"journal_entries"`
	RemindersEnabled bool           `json:"reminders_enabled"`
	FaithMode        bool           `json:"faith_mode"`
	AvatarColor      string         `json:"avatar_color"`
	IsSponsor        bool           `json:"is_sponsor"`
	// At most one of these is set: a pending request awaiting acceptance,
	// or an accepted relationship. Assigning clears pending.
	AssignedSponsorID string `json:"assigned_sponsor_id,omitempty"`
	PendingSponsorID  string `json:"pending_sponsor_id,omitempty"`
}

// NewProfile constructs a profile with the fixed login defaults:
// empty bio, goals, and journal, reminders on, faith mode on, the
// default avatar color, not a sponsor.
func NewProfile(name string, title TitlePrefix, soberDate time.Time) *UserProfile {
	return &UserProfile{
		SchemaVersion:    SchemaVersion,
		Name:             name,
		TitlePrefix:      title,
		SoberDate:        soberDate,
		Goals:            []Goal{},
		JournalEntries:   []JournalEntry{},
		RemindersEnabled: true,
		FaithMode:        true,
		AvatarColor:      DefaultAvatarColor,
	}
}

// DaysSober returns the whole days elapsed since the sober date,
// floor-divided. A sober date in the future counts as zero.
func (p *UserProfile) DaysSober(now time.Time) int {
	if p.SoberDate.After(now) {
		return 0
	}
	return int(now.Sub(p.SoberDate) / (24 * time.Hour))
}

// DisplayName returns the title-prefixed name, e.g. "Sister Jill".
func (p *UserProfile) DisplayName() string {
	if p.TitlePrefix == TitleNone {
		return p.Name
	}
	return string(p.TitlePrefix) + " " + p.Name
}

// HasSponsor reports whether an accepted sponsor relationship exists.
func (p *UserProfile) HasSponsor() bool {
	return p.AssignedSponsorID != ""
}
