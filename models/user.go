package models

import "time"

// Preferences holds per-user notification and activity-type settings.
type Preferences struct {
	ActivityTypes []string `json:"activityTypes"`
	Notifications bool     `json:"notifications"`
}

// DefaultPreferences returns the preferences applied when signup omits them.
func DefaultPreferences() Preferences {
	return Preferences{ActivityTypes: []string{}, Notifications: true}
}

// User represents an account. The password is stored as-is and compared in
// plaintext at login; this service mocks authentication by design.
type User struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Password  string      `json:"-"`
	Name      string      `json:"name"`
	Age       *int        `json:"age,omitempty"`
	Weight    *float64    `json:"weight,omitempty"`
	Height    *float64    `json:"height,omitempty"`
	Goals     []string    `json:"goals"`
	Prefs     Preferences `json:"preferences"`
	CreatedAt time.Time   `json:"createdAt"`
}
