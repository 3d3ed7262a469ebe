// ABOUTME: Tests for the mock community service
// ABOUTME: Covers seed content, praise counting, latency injection, and cancellation
package community

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchorup/anchor/internal/models"
)

func instantMock() *Mock {
	return NewMock(0)
}

func TestVolunteers_SeedContent(t *testing.T) {
	vols, err := instantMock().Volunteers(context.Background())
	require.NoError(t, err)
	require.Len(t, vols, 4)

	assert.Equal(t, "Martha", vols[0].Name)
	assert.Equal(t, models.TitleSister, vols[0].Title)
	assert.Equal(t, 12, vols[0].SoberYears)
	assert.Equal(t, "Grief & Recovery", vols[0].Specialty)
	assert.Equal(t, models.VolunteerInCall, vols[2].Status, "Sarah is mid-call")
}

func TestMeetings_SeedContent(t *testing.T) {
	meetings, err := instantMock().Meetings(context.Background())
	require.NoError(t, err)
	require.Len(t, meetings, 4)
	assert.Equal(t, "Daily Bread Morning Devotional", meetings[0].Title)
	assert.Equal(t, models.MeetingFaithBased, meetings[0].Type)
	assert.Equal(t, models.MeetingWomenOnly, meetings[3].Type)
}

func TestParticipants(t *testing.T) {
	m := instantMock()

	parts, err := m.Participants(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, parts, 6)
	assert.Equal(t, "Host", parts[0].Role)

	_, err = m.Participants(context.Background(), "missing")
	assert.Error(t, err)
}

func TestSponsorByID(t *testing.T) {
	m := instantMock()

	s, err := m.SponsorByID(context.Background(), "s2")
	require.NoError(t, err)
	assert.Equal(t, "Sister Sarah", s.Name)
	assert.Equal(t, models.AvailabilityMedium, s.Availability)

	_, err = m.SponsorByID(context.Background(), "s9")
	assert.Error(t, err)
}

func TestPraiseTestimony_Accumulates(t *testing.T) {
	m := instantMock()

	total, err := m.PraiseTestimony(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 125, total)

	total, err = m.PraiseTestimony(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 126, total)

	// The listing reflects the praise given this session
	list, err := m.Testimonies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 126, list[0].PraiseCount)
	assert.Equal(t, 89, list[1].PraiseCount)
}

func TestDonate(t *testing.T) {
	m := instantMock()

	require.NoError(t, m.Donate(context.Background(), "p2"))
	assert.Error(t, m.Donate(context.Background(), "p99"))
}

func TestLatency_UsesInjectedSleep(t *testing.T) {
	m := NewMock(1500 * time.Millisecond)

	var slept time.Duration
	m.SetSleep(func(_ context.Context, d time.Duration) error {
		slept = d
		return nil
	})

	_, err := m.Volunteers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, slept, "simulated latency flows through the injected sleep")
}

func TestCancellation_AbortsTheCall(t *testing.T) {
	m := NewMock(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Meetings(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerses_Filtering(t *testing.T) {
	all := Verses(models.VerseCategory("All"))
	assert.Len(t, all, 8, "unknown category returns the whole bank")

	strength := Verses(models.VerseStrength)
	require.Len(t, strength, 2)
	assert.Equal(t, "Philippians 4:13", strength[0].Reference)
	assert.Equal(t, "Isaiah 40:31", strength[1].Reference)
}

func TestSteps_OrderedAndComplete(t *testing.T) {
	got := Steps()
	require.Len(t, got, 12)
	for i, step := range got {
		assert.Equal(t, i+1, step.Number)
		assert.NotEmpty(t, step.Scripture)
		assert.NotEmpty(t, step.Questions)
	}
	assert.Equal(t, "Honesty", got[0].Title)
	assert.Equal(t, "Service", got[11].Title)
}

func TestCrisisResources_AlwaysAvailable(t *testing.T) {
	res := CrisisResources()
	require.NotEmpty(t, res)
	assert.Equal(t, "988", res[0].Phone)
}

func TestReflectionPrompts_Rotation(t *testing.T) {
	prompts := ReflectionPrompts()
	require.Len(t, prompts, 6)

	// Callers rotate with modular indexing; returned slice is a copy
	prompts[0] = "mutated"
	assert.NotEqual(t, "mutated", ReflectionPrompts()[0])
}
