package models

// Challenge is a named progress/target pair. Challenges are stored per user
// but no endpoint currently advances them.
type Challenge struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Progress  int    `json:"progress"`
	Target    int    `json:"target"`
	Completed bool   `json:"completed"`
}

// Gamification is the per-user XP/level/points ledger. XP and points only
// ever grow; the level starts at 1 and advances one step per qualifying
// level-up call.
type Gamification struct {
	UserID     string      `json:"userId"`
	XP         int         `json:"xp"`
	Level      int         `json:"level"`
	Points     int         `json:"points"`
	Badges     []string    `json:"badges"`
	Challenges []Challenge `json:"challenges"`
}

// DefaultGamification returns the zeroed ledger a fresh account starts with.
func DefaultGamification(userID string) Gamification {
	return Gamification{
		UserID:     userID,
		XP:         0,
		Level:      1,
		Points:     0,
		Badges:     []string{},
		Challenges: []Challenge{},
	}
}

// XPForNextLevel is the XP threshold for advancing past the current level.
func (g Gamification) XPForNextLevel() int {
	return g.Level * 1000
}

// HasBadge reports whether badgeID is already in the badge set.
func (g Gamification) HasBadge(badgeID string) bool {
	for _, b := range g.Badges {
		if b == badgeID {
			return true
		}
	}
	return false
}
