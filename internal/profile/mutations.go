// ABOUTME: Mutation-dispatch interface the profile store exposes to screens
// ABOUTME: Replaces the source's callback-threading with one narrow command surface
package profile

import (
	"github.com/anchorup/anchor/internal/models"
)

// Mutation is one requested change to the active profile. Screens
// construct mutations and hand them to Apply; they never write the
// persisted store directly.
type Mutation interface {
	apply(p *models.UserProfile)
}

// Apply runs a mutation against the active profile and persists the
// result as a full replacement write.
func (s *Store) Apply(m Mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoSession
	}

	next := cloneProfile(s.current)
	m.apply(next)
	return s.saveLocked(next)
}

// AppendJournalEntry prepends a new entry, keeping newest-first order.
type AppendJournalEntry struct {
	Entry models.JournalEntry
}

func (m AppendJournalEntry) apply(p *models.UserProfile) {
	p.JournalEntries = models.PrependEntry(p.JournalEntries, m.Entry)
}

// RequestSponsor records a pending sponsorship request. Only one
// request can be outstanding; a second request replaces the first.
type RequestSponsor struct {
	SponsorID string
}

func (m RequestSponsor) apply(p *models.UserProfile) {
	p.PendingSponsorID = m.SponsorID
}

// AssignSponsor accepts a sponsorship, clearing any pending request so
// the two fields stay mutually exclusive.
type AssignSponsor struct {
	SponsorID string
}

func (m AssignSponsor) apply(p *models.UserProfile) {
	p.AssignedSponsorID = m.SponsorID
	p.PendingSponsorID = ""
}

// SetFaithMode toggles the faith-mode presentation preference.
type SetFaithMode struct {
	Enabled bool
}

func (m SetFaithMode) apply(p *models.UserProfile) {
	p.FaithMode = m.Enabled
}

// SetReminders toggles the reminders preference.
type SetReminders struct {
	Enabled bool
}

func (m SetReminders) apply(p *models.UserProfile) {
	p.RemindersEnabled = m.Enabled
}

// SetAvatarColor updates the avatar color token.
type SetAvatarColor struct {
	Color string
}

func (m SetAvatarColor) apply(p *models.UserProfile) {
	p.AvatarColor = m.Color
}

// AddGoal appends a recovery goal.
type AddGoal struct {
	Goal models.Goal
}

func (m AddGoal) apply(p *models.UserProfile) {
	p.Goals = append(p.Goals, m.Goal)
}

// CompleteGoal marks the goal with the given id completed.
type CompleteGoal struct {
	GoalID string
}

func (m CompleteGoal) apply(p *models.UserProfile) {
	for i := range p.Goals {
		if p.Goals[i].ID == m.GoalID {
			p.Goals[i].Completed = true
		}
	}
}
