package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fitarc/fitarc/models"
)

// Memory is the default in-process backend. A single RWMutex guards all maps
// and slices; individual operations are atomic but multi-step handler flows
// (log activity, then credit XP) are not, matching the original store.
type Memory struct {
	mu           sync.RWMutex
	users        []models.User
	activities   []models.Activity
	gamification map[string]models.Gamification
	social       map[string]models.Social
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		gamification: map[string]models.Gamification{},
		social:       map[string]models.Social{},
	}
}

// CreateUser appends the user and eagerly initializes its gamification and
// social records. Fails with ErrConflict on a duplicate email, leaving the
// directory untouched.
func (m *Memory) CreateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrConflict
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.users = append(m.users, *u)

	m.gamification[u.ID] = models.DefaultGamification(u.ID)
	social := models.DefaultSocial(u.ID)
	// The original seeded a new account's rank with the directory size.
	social.LeaderboardRank = len(m.users)
	m.social[u.ID] = social
	return nil
}

func (m *Memory) UserByID(id string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *Memory) UserByEmail(email string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// Users returns all users in creation order.
func (m *Memory) Users() []models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out
}

// AddActivity assigns an id and creation timestamp and appends to the log.
func (m *Memory) AddActivity(a *models.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.Date.IsZero() {
		a.Date = now
	}
	m.activities = append(m.activities, *a)
	return nil
}

// UpdateActivity shallow-merges the patch into the stored activity.
func (m *Memory) UpdateActivity(id string, patch models.ActivityPatch) (models.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.activities {
		if m.activities[i].ID == id {
			patch.Apply(&m.activities[i])
			return m.activities[i], nil
		}
	}
	return models.Activity{}, ErrNotFound
}

// DeleteActivity removes the entry, keeping the order of the rest unchanged.
func (m *Memory) DeleteActivity(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.activities {
		if m.activities[i].ID == id {
			m.activities = append(m.activities[:i], m.activities[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ActivitiesByUser returns the user's activities in insertion order.
func (m *Memory) ActivitiesByUser(userID string) []models.Activity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Activity{}
	for _, a := range m.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// GamificationOrDefault returns the stored ledger, or a zeroed default for
// unknown users. The read never writes the default back.
func (m *Memory) GamificationOrDefault(userID string) models.Gamification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.gamification[userID]; ok {
		return g
	}
	return models.DefaultGamification(userID)
}

func (m *Memory) SaveGamification(g models.Gamification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamification[g.UserID] = g
	return nil
}

// SocialOrDefault returns the stored record, or an empty default for unknown
// users, without mutating backing storage.
func (m *Memory) SocialOrDefault(userID string) models.Social {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.social[userID]; ok {
		return s
	}
	return models.DefaultSocial(userID)
}

func (m *Memory) SaveSocial(s models.Social) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.social[s.UserID] = s
	return nil
}
