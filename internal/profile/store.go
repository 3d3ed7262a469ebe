// ABOUTME: Profile store owning the single persisted UserProfile
// ABOUTME: Load-on-start, save-on-mutate, logout keeps the persisted copy
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"

	"github.com/anchorup/anchor/internal/kvstore"
	"github.com/anchorup/anchor/internal/models"
)

var (
	// ErrEmptyName is returned when login is attempted with a blank name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrFutureSoberDate is returned when the sober date lies in the future.
	ErrFutureSoberDate = errors.New("sober date must be in the past or present")
	// ErrInvalidTitle is returned for a title outside the closed set.
	ErrInvalidTitle = errors.New("title must be Sister, Brother, or empty")
	// ErrNoSession is returned when a mutation arrives while logged out.
	ErrNoSession = errors.New("no active session")
)

// KV is the narrow persistence surface the store needs. The charm
// client satisfies it in production; tests use an in-memory fake.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Store is the exclusive owner and only writer of the persisted
// UserProfile. Screens hold read-only copies and request changes
// through Apply.
type Store struct {
	kv     KV
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	current *models.UserProfile
}

// NewStore creates a profile store over the given KV backend.
func NewStore(kv KV, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock overrides the time source, for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Load reads the persisted profile and makes it the active session.
// Absent, unreadable, or corrupt state all yield nil: the app falls
// back to the logged-out splash rather than raising.
func (s *Store) Load() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(kvstore.ProfileKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Warn("profile load failed, starting logged out", "error", err)
		}
		return nil
	}

	var p models.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("persisted profile is corrupt, starting logged out", "error", err)
		return nil
	}

	s.current = &p
	return cloneProfile(&p)
}

// Current returns a copy of the active profile, or nil when logged out.
func (s *Store) Current() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProfile(s.current)
}

// Save replaces the entire persisted profile. The in-memory session is
// updated first so a storage failure never discards state the screens
// are already rendering; the error is returned for the screen to show.
func (s *Store) Save(p *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(p)
}

func (s *Store) saveLocked(p *models.UserProfile) error {
	s.current = cloneProfile(p)

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := s.kv.Set(kvstore.ProfileKey, data); err != nil {
		return fmt.Errorf("persisting profile: %w", err)
	}
	return nil
}

// CreateFromLogin constructs a fresh profile with the fixed defaults
// and persists it, replacing any previous profile. Validation failures
// leave both memory and storage untouched.
func (s *Store) CreateFromLogin(name string, title models.TitlePrefix, soberDate time.Time) (*models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !title.Valid() {
		return nil, ErrInvalidTitle
	}
	if soberDate.After(s.now()) {
		return nil, ErrFutureSoberDate
	}

	p := models.NewProfile(name, title, soberDate)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveLocked(p); err != nil {
		return nil, err
	}
	return cloneProfile(p), nil
}

// Resume reactivates the previously persisted profile without
// constructing a new one. This is the returning-identity path the
// source app lacked: its login form always overwrote the saved profile
// despite the logout message promising progress was kept.
func (s *Store) Resume() *models.UserProfile {
	return s.Load()
}

// Clear ends the session without touching the persisted copy, so a
// later Resume still recovers it. Logout is session-local, not
// destructive.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Export writes the active profile as readable JSON under the XDG data
// directory and returns the path written.
func (s *Store) Export() (string, error) {
	s.mu.Lock()
	p := cloneProfile(s.current)
	s.mu.Unlock()

	if p == nil {
		return "", ErrNoSession
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	dir := filepath.Join(dataHome, "anchor")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, "profile.json")
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// cloneProfile deep-copies a profile so callers never share the
// store's internal slices.
func cloneProfile(p *models.UserProfile) *models.UserProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.Goals = append([]models.Goal(nil), p.Goals...)
	out.JournalEntries = append([]models.JournalEntry(nil), p.JournalEntries...)
	return &out
}
