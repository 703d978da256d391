package models

import "time"

// Nudge is a canned coach message.
type Nudge struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// PlanExercise is one entry of a workout plan. Either Reps or Duration is
// set depending on the exercise.
type PlanExercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

// WorkoutPlan is the static plan returned by the coach stub.
type WorkoutPlan struct {
	ID                string         `json:"id"`
	Exercises         []PlanExercise `json:"exercises"`
	Intensity         string         `json:"intensity"`
	EstimatedCalories int            `json:"estimatedCalories"`
}
