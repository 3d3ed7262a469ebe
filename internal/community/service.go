// ABOUTME: Community service abstraction over the backend that does not exist yet
// ABOUTME: The mock implementation serves seed content behind an injectable latency
package community

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/anchorup/anchor/internal/models"
)

// Service is the boundary to the community backend. Everything behind
// it is network-shaped: calls take a context, may be slow, and may
// fail. Screens depend on this interface, never on the mock directly.
type Service interface {
	Volunteers(ctx context.Context) ([]models.Volunteer, error)
	Meetings(ctx context.Context) ([]models.Meeting, error)
	Participants(ctx context.Context, meetingID string) ([]models.Participant, error)
	Sponsors(ctx context.Context) ([]models.Sponsor, error)
	SponsorByID(ctx context.Context, id string) (*models.Sponsor, error)
	Testimonies(ctx context.Context) ([]models.Testimony, error)
	PraiseTestimony(ctx context.Context, id string) (int, error)
	ImpactPackages(ctx context.Context) ([]models.ImpactPackage, error)
	Donate(ctx context.Context, packageID string) error
	RecentMiracles(ctx context.Context) ([]string, error)
	RequestCallback(ctx context.Context) error
}

// Mock serves the seed content with a simulated network delay. The
// delay and the sleep primitive are both injectable so tests run
// instantly and can assert cancellation behavior.
type Mock struct {
	latency time.Duration
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	praise map[string]int
}

// NewMock builds the mock service with the given simulated latency.
func NewMock(latency time.Duration) *Mock {
	return &Mock{
		latency: latency,
		now:     time.Now,
		sleep:   sleepFor,
		praise:  map[string]int{},
	}
}

// SetClock overrides the time source, for tests.
func (m *Mock) SetClock(now func() time.Time) { m.now = now }

// SetSleep overrides the delay primitive, for tests.
func (m *Mock) SetSleep(sleep func(ctx context.Context, d time.Duration) error) { m.sleep = sleep }

func sleepFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *Mock) wait(ctx context.Context) error {
	return m.sleep(ctx, m.latency)
}

// Volunteers lists the peer-line volunteers with their presence state.
func (m *Mock) Volunteers(ctx context.Context) ([]models.Volunteer, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return append([]models.Volunteer(nil), seedVolunteers...), nil
}

// Meetings lists upcoming fellowship meetings.
func (m *Mock) Meetings(ctx context.Context) ([]models.Meeting, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return append([]models.Meeting(nil), seedMeetings...), nil
}

// Participants lists who is in the given meeting room.
func (m *Mock) Participants(ctx context.Context, meetingID string) ([]models.Participant, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	for _, mt := range seedMeetings {
		if mt.ID == meetingID {
			return append([]models.Participant(nil), seedParticipants...), nil
		}
	}
	return nil, fmt.Errorf("meeting %q not found", meetingID)
}

// Sponsors lists the available sponsor profiles.
func (m *Mock) Sponsors(ctx context.Context) ([]models.Sponsor, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return append([]models.Sponsor(nil), seedSponsors...), nil
}

// SponsorByID resolves one sponsor profile.
func (m *Mock) SponsorByID(ctx context.Context, id string) (*models.Sponsor, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	for _, s := range seedSponsors {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, fmt.Errorf("sponsor %q not found", id)
}

// Testimonies lists shared recovery stories, newest first.
func (m *Mock) Testimonies(ctx context.Context) ([]models.Testimony, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Testimony, len(seedTestimonies))
	for i, t := range seedTestimonies {
		t.PraiseCount += m.praise[t.ID]
		t.CreatedAt = m.now()
		out[i] = t
	}
	return out, nil
}

// PraiseTestimony increments a testimony's praise count and returns
// the new total.
func (m *Mock) PraiseTestimony(ctx context.Context, id string) (int, error) {
	if err := m.wait(ctx); err != nil {
		return 0, err
	}

	for _, t := range seedTestimonies {
		if t.ID != id {
			continue
		}
		m.mu.Lock()
		m.praise[id]++
		total := t.PraiseCount + m.praise[id]
		m.mu.Unlock()
		return total, nil
	}
	return 0, fmt.Errorf("testimony %q not found", id)
}

// ImpactPackages lists the outreach donation packages.
func (m *Mock) ImpactPackages(ctx context.Context) ([]models.ImpactPackage, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return append([]models.ImpactPackage(nil), seedPackages...), nil
}

// Donate records a gift of the given impact package.
func (m *Mock) Donate(ctx context.Context, packageID string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	for _, p := range seedPackages {
		if p.ID == packageID {
			return nil
		}
	}
	return fmt.Errorf("impact package %q not found", packageID)
}

// RecentMiracles lists the latest outreach updates.
func (m *Mock) RecentMiracles(ctx context.Context) ([]string, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return append([]string(nil), seedMiracles...), nil
}

// RequestCallback files a peer-line callback request.
func (m *Mock) RequestCallback(ctx context.Context) error {
	return m.wait(ctx)
}
