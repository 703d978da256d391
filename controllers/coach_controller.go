package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fitarc/fitarc/models"
	"github.com/fitarc/fitarc/utils"
)

// CoachController serves the scripted coach: canned nudges, a static workout
// plan, and a keyword-matched chat reply. There is no inference and no state
// beyond the current request.
type CoachController struct{}

// NewCoachController creates a CoachController.
func NewCoachController() *CoachController {
	return &CoachController{}
}

// coachScript is the ordered keyword table for chat replies; the first
// matching row wins.
var coachScript = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"workout", "exercise"},
		reply:    "Based on your goals, I recommend a 30-minute HIIT session today. It will help you burn calories and build endurance. Would you like me to create a specific workout plan?",
	},
	{
		keywords: []string{"running", "run"},
		reply:    "Great that you're focusing on running! Try interval training: 5 min warm-up, then alternate 2 min fast run with 1 min walk for 20 minutes. This will improve your speed and endurance.",
	},
	{
		keywords: []string{"motivation", "motivate"},
		reply:    "You've got this! Every workout counts, and you're building a stronger version of yourself every day. Remember why you started - you're capable of amazing things! 💪",
	},
	{
		keywords: []string{"progress", "stats"},
		reply:    "You've been doing great! You've logged several activities this week. Keep up the momentum - consistency is key to reaching your goals.",
	},
}

const coachFallback = "That's a great question! I'm here to help you with workouts, nutrition tips, motivation, and tracking your progress. What specific area would you like to focus on?"

// coachReply matches the input against the script, case-insensitively, and
// returns the first hit or the generic fallback.
func coachReply(input string) string {
	lower := strings.ToLower(input)
	for _, row := range coachScript {
		for _, kw := range row.keywords {
			if strings.Contains(lower, kw) {
				return row.reply
			}
		}
	}
	return coachFallback
}

// Nudge handles POST /coach/nudge with a canned motivational message.
func (c *CoachController) Nudge(ctx *gin.Context) {
	type request struct {
		UserID  string `json:"userId" binding:"required"`
		Context string `json:"context"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	nudge := models.Nudge{
		ID:        uuid.NewString(),
		Message:   "You're doing amazing! Keep pushing towards your goals!",
		Type:      "motivation",
		Timestamp: time.Now(),
	}

	utils.Success(ctx, gin.H{"nudge": nudge})
}

// Nudges handles GET /coach/nudges?userId=... with the static pair.
func (c *CoachController) Nudges(ctx *gin.Context) {
	userID := strings.TrimSpace(ctx.Query("userId"))
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	now := time.Now()
	nudges := []models.Nudge{
		{
			ID:        "1",
			Message:   "Great job on your workout yesterday! Keep it up!",
			Type:      "motivation",
			Timestamp: now,
		},
		{
			ID:        "2",
			Message:   "Time for your daily workout! You've got this!",
			Type:      "workout",
			Timestamp: now,
		},
	}

	utils.Success(ctx, gin.H{"nudges": nudges})
}

// WorkoutPlan handles GET /coach/workout-plan?userId=... with the static plan.
func (c *CoachController) WorkoutPlan(ctx *gin.Context) {
	userID := strings.TrimSpace(ctx.Query("userId"))
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	plan := models.WorkoutPlan{
		ID: "1",
		Exercises: []models.PlanExercise{
			{Name: "Push-ups", Sets: 3, Reps: 12},
			{Name: "Squats", Sets: 3, Reps: 15},
			{Name: "Plank", Sets: 3, Duration: 30},
		},
		Intensity:         "medium",
		EstimatedCalories: 200,
	}

	utils.Success(ctx, gin.H{"workoutPlan": plan})
}

// Feedback handles POST /coach/feedback. Accepted and logged, nothing more.
func (c *CoachController) Feedback(ctx *gin.Context) {
	type request struct {
		UserID   string `json:"userId" binding:"required"`
		NudgeID  string `json:"nudgeId" binding:"required"`
		Accepted bool   `json:"accepted"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID and nudge ID are required")
		return
	}

	utils.Sugar.Infow("coach feedback", "userId", req.UserID, "nudgeId", req.NudgeID, "accepted", req.Accepted)
	utils.Success(ctx, gin.H{"message": "Feedback recorded"})
}

// Chat handles POST /coach/chat: the keyword-scripted reply.
func (c *CoachController) Chat(ctx *gin.Context) {
	type request struct {
		UserID  string `json:"userId" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID and message are required")
		return
	}

	message := utils.Sanitize(req.Message)
	reply := models.Nudge{
		ID:        uuid.NewString(),
		Message:   coachReply(message),
		Type:      "reply",
		Timestamp: time.Now(),
	}

	utils.Success(ctx, gin.H{"reply": reply})
}
