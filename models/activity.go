package models

import "time"

// Activity is a single logged workout session. Duration is minutes; calories,
// distance (km), steps and heart rate are caller-supplied and not validated
// against each other.
type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Duration  int       `json:"duration"`
	Calories  int       `json:"calories,omitempty"`
	Distance  float64   `json:"distance,omitempty"`
	Steps     int       `json:"steps,omitempty"`
	HeartRate int       `json:"heartRate,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityPatch carries a partial update for PATCH /activity/:id. Nil fields
// are left untouched (shallow merge).
type ActivityPatch struct {
	Type      *string    `json:"type"`
	Duration  *int       `json:"duration"`
	Calories  *int       `json:"calories"`
	Distance  *float64   `json:"distance"`
	Steps     *int       `json:"steps"`
	HeartRate *int       `json:"heartRate"`
	Date      *time.Time `json:"date"`
}

// Apply merges the non-nil patch fields into the activity.
func (p ActivityPatch) Apply(a *Activity) {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Calories != nil {
		a.Calories = *p.Calories
	}
	if p.Distance != nil {
		a.Distance = *p.Distance
	}
	if p.Steps != nil {
		a.Steps = *p.Steps
	}
	if p.HeartRate != nil {
		a.HeartRate = *p.HeartRate
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
}
