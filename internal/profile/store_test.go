// ABOUTME: Tests for the profile store lifecycle against an in-memory KV fake
// ABOUTME: Covers login, overwrite, resume, logout, soft-fail load, and save failures
package profile

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchorup/anchor/internal/kvstore"
	"github.com/anchorup/anchor/internal/logging"
	"github.com/anchorup/anchor/internal/models"
)

// fakeKV is an in-memory KV with injectable failures.
type fakeKV struct {
	data     map[string][]byte
	getErr   error
	setErr   error
	setCalls int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}}
}

func (f *fakeKV) Get(key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, kvstore.ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(key string, value []byte) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func newStore(kv KV) *Store {
	return NewStore(kv, logging.Discard())
}

func TestCreateFromLogin_ThenLoad(t *testing.T) {
	kv := newFakeKV()
	s := newStore(kv)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	sober := now.AddDate(0, 0, -90)
	created, err := s.CreateFromLogin("Jill", models.TitleSister, sober)
	require.NoError(t, err)

	// A fresh store over the same KV sees the persisted profile
	s2 := newStore(kv)
	loaded := s2.Load()
	require.NotNil(t, loaded)

	assert.Equal(t, created.Name, loaded.Name)
	assert.Equal(t, models.TitleSister, loaded.TitlePrefix)
	assert.Equal(t, 90, loaded.DaysSober(now))
	assert.Equal(t, models.SchemaVersion, loaded.SchemaVersion)
}

func TestCreateFromLogin_Validation(t *testing.T) {
	tests := []struct {
		name      string
		loginName string
		title     models.TitlePrefix
		sober     time.Time
		wantErr   error
	}{
		{"empty name", "", models.TitleSister, time.Now().AddDate(0, 0, -1), ErrEmptyName},
		{"whitespace name", "   ", models.TitleSister, time.Now().AddDate(0, 0, -1), ErrEmptyName},
		{"unknown title", "Jill", models.TitlePrefix("Pastor"), time.Now().AddDate(0, 0, -1), ErrInvalidTitle},
		{"future sober date", "Jill", models.TitleSister, time.Now().AddDate(0, 0, 2), ErrFutureSoberDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newFakeKV()
			s := newStore(kv)

			_, err := s.CreateFromLogin(tt.loginName, tt.title, tt.sober)
			assert.ErrorIs(t, err, tt.wantErr)
			// No persisted or in-memory effect
			assert.Zero(t, kv.setCalls)
			assert.Nil(t, s.Current())
		})
	}
}

func TestCreateFromLogin_OverwritesPreviousProfile(t *testing.T) {
	kv := newFakeKV()
	s := newStore(kv)

	sober := time.Now().AddDate(0, 0, -30)
	_, err := s.CreateFromLogin("Jill", models.TitleSister, sober)
	require.NoError(t, err)

	entry := models.NewJournalEntry("day one", models.MoodStrong, time.Now())
	require.NoError(t, s.Apply(AppendJournalEntry{Entry: entry}))

	// Logging in again with a different name replaces, never merges
	_, err = s.CreateFromLogin("Mike", models.TitleBrother, sober)
	require.NoError(t, err)

	loaded := newStore(kv).Load()
	require.NotNil(t, loaded)
	assert.Equal(t, "Mike", loaded.Name)
	assert.Empty(t, loaded.JournalEntries, "old journal entries must be gone after a fresh login")
}

func TestResume_RecoversPersistedProfileAfterLogout(t *testing.T) {
	kv := newFakeKV()
	s := newStore(kv)

	_, err := s.CreateFromLogin("Jill", models.TitleSister, time.Now().AddDate(0, 0, -10))
	require.NoError(t, err)
	require.NoError(t, s.Apply(AppendJournalEntry{
		Entry: models.NewJournalEntry("kept", models.MoodGrateful, time.Now()),
	}))

	s.Clear()
	assert.Nil(t, s.Current(), "logout ends the session")

	resumed := s.Resume()
	require.NotNil(t, resumed, "logout must not destroy the persisted copy")
	assert.Equal(t, "Jill", resumed.Name)
	require.Len(t, resumed.JournalEntries, 1)
	assert.Equal(t, "kept", resumed.JournalEntries[0].Text)
}

func TestLoad_SoftFailures(t *testing.T) {
	t.Run("absent profile", func(t *testing.T) {
		s := newStore(newFakeKV())
		assert.Nil(t, s.Load())
	})

	t.Run("corrupt profile", func(t *testing.T) {
		kv := newFakeKV()
		kv.data[kvstore.ProfileKey] = []byte("{not json")
		s := newStore(kv)
		assert.Nil(t, s.Load(), "corrupt state falls back to logged out, no panic")
	})

	t.Run("storage unavailable", func(t *testing.T) {
		kv := newFakeKV()
		kv.getErr = errors.New("disk gone")
		s := newStore(kv)
		assert.Nil(t, s.Load())
	})
}

func TestSave_FailureKeepsRenderedState(t *testing.T) {
	kv := newFakeKV()
	s := newStore(kv)

	_, err := s.CreateFromLogin("Jill", models.TitleSister, time.Now().AddDate(0, 0, -5))
	require.NoError(t, err)

	kv.setErr = errors.New("quota exceeded")
	entry := models.NewJournalEntry("still here", models.MoodPeaceful, time.Now())
	err = s.Apply(AppendJournalEntry{Entry: entry})
	require.Error(t, err, "storage failure surfaces to the caller")

	// The in-memory session keeps the state the screen already rendered
	cur := s.Current()
	require.NotNil(t, cur)
	require.Len(t, cur.JournalEntries, 1)
	assert.Equal(t, "still here", cur.JournalEntries[0].Text)
}

func TestCurrent_ReturnsIsolatedCopy(t *testing.T) {
	s := newStore(newFakeKV())
	_, err := s.CreateFromLogin("Jill", models.TitleSister, time.Now().AddDate(0, 0, -5))
	require.NoError(t, err)

	cur := s.Current()
	cur.Name = "Tampered"
	cur.JournalEntries = append(cur.JournalEntries, models.JournalEntry{ID: "x"})

	again := s.Current()
	assert.Equal(t, "Jill", again.Name)
	assert.Empty(t, again.JournalEntries)
}

func TestPersistedShape(t *testing.T) {
	kv := newFakeKV()
	s := newStore(kv)
	_, err := s.CreateFromLogin("Jill", models.TitleSister, time.Now().AddDate(0, 0, -5))
	require.NoError(t, err)

	raw, ok := kv.data[kvstore.ProfileKey]
	require.True(t, ok, "profile lives under the fixed key")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.EqualValues(t, models.SchemaVersion, decoded["schema_version"])
}
