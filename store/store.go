package store

import (
	"errors"

	"github.com/fitarc/fitarc/models"
)

var (
	// ErrNotFound is returned when an id does not resolve to an entity.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique constraint (user email) is violated.
	ErrConflict = errors.New("conflict")
)

// Store is the repository behind all handlers. A single process-lifetime
// instance is injected into the controllers; backends must be safe for
// concurrent use, but read-modify-write flows above the store are not atomic
// (last write wins, as in the original design).
//
// Gamification and social reads use getOrDefault semantics: absence yields a
// zeroed record without mutating backing storage.
type Store interface {
	// Users. CreateUser rejects duplicate emails with ErrConflict and, on
	// success, eagerly initializes the user's gamification and social records.
	CreateUser(u *models.User) error
	UserByID(id string) (models.User, bool)
	UserByEmail(email string) (models.User, bool)
	Users() []models.User

	// Activities. Insertion order is preserved by ActivitiesByUser.
	AddActivity(a *models.Activity) error
	UpdateActivity(id string, patch models.ActivityPatch) (models.Activity, error)
	DeleteActivity(id string) error
	ActivitiesByUser(userID string) []models.Activity

	// Gamification ledger.
	GamificationOrDefault(userID string) models.Gamification
	SaveGamification(g models.Gamification) error

	// Social graph.
	SocialOrDefault(userID string) models.Social
	SaveSocial(s models.Social) error
}
