// ABOUTME: Tests for UserProfile construction and derived values
// ABOUTME: Verifies login defaults, day counting, and display helpers
package models

import (
	"testing"
	"time"
)

func TestNewProfile_Defaults(t *testing.T) {
	sober := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := NewProfile("Jill", TitleSister, sober)

	if p.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", p.SchemaVersion, SchemaVersion)
	}
	if p.Name != "Jill" || p.TitlePrefix != TitleSister {
		t.Errorf("identity = %q/%q, want Jill/Sister", p.Name, p.TitlePrefix)
	}
	if !p.SoberDate.Equal(sober) {
		t.Errorf("SoberDate = %s, want %s", p.SoberDate, sober)
	}
	if p.Bio != "" || len(p.Goals) != 0 || len(p.JournalEntries) != 0 {
		t.Error("bio, goals, and journal should start empty")
	}
	if !p.RemindersEnabled || !p.FaithMode {
		t.Error("reminders and faith mode should default on")
	}
	if p.AvatarColor != DefaultAvatarColor {
		t.Errorf("AvatarColor = %q, want %q", p.AvatarColor, DefaultAvatarColor)
	}
	if p.IsSponsor {
		t.Error("new profile should not be a sponsor")
	}
	if p.PendingSponsorID != "" || p.AssignedSponsorID != "" {
		t.Error("new profile should have no sponsor links")
	}
}

func TestDaysSober(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		sober time.Time
		want  int
	}{
		{
			name:  "same instant",
			sober: now,
			want:  0,
		},
		{
			name:  "under one day",
			sober: now.Add(-23 * time.Hour),
			want:  0,
		},
		{
			name:  "exactly ten days",
			sober: now.AddDate(0, 0, -10),
			want:  10,
		},
		{
			name:  "ten and a half days floors to ten",
			sober: now.Add(-10*24*time.Hour - 12*time.Hour),
			want:  10,
		},
		{
			name:  "one year",
			sober: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			want:  365,
		},
		{
			name:  "future date counts as zero",
			sober: now.Add(48 * time.Hour),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile("Jill", TitleSister, tt.sober)
			if got := p.DaysSober(now); got != tt.want {
				t.Errorf("DaysSober = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		title TitlePrefix
		want  string
	}{
		{"with title", TitleSister, "Sister Jill"},
		{"brother title", TitleBrother, "Brother Jill"},
		{"no title", TitleNone, "Jill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile("Jill", tt.title, time.Now())
			if got := p.DisplayName(); got != tt.want {
				t.Errorf("DisplayName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitlePrefix_Valid(t *testing.T) {
	for _, valid := range []TitlePrefix{TitleSister, TitleBrother, TitleNone} {
		if !valid.Valid() {
			t.Errorf("%q should be valid", valid)
		}
	}
	if TitlePrefix("Pastor").Valid() {
		t.Error("unknown title should be invalid")
	}
}
