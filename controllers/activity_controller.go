package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitarc/fitarc/models"
	"github.com/fitarc/fitarc/store"
	"github.com/fitarc/fitarc/utils"
)

// ActivityController handles the activity log endpoints.
type ActivityController struct {
	st store.Store
}

// NewActivityController creates an ActivityController over the injected store.
func NewActivityController(st store.Store) *ActivityController {
	return &ActivityController{st: st}
}

// Log handles POST /activity/log: appends the activity and credits the
// gamification ledger. The append and the credit are two separate store
// writes with no transaction across them.
func (c *ActivityController) Log(ctx *gin.Context) {
	type request struct {
		UserID    string     `json:"userId" binding:"required"`
		Type      string     `json:"type" binding:"required"`
		Duration  int        `json:"duration" binding:"required"`
		Calories  int        `json:"calories"`
		Distance  float64    `json:"distance"`
		Steps     int        `json:"steps"`
		HeartRate int        `json:"heartRate"`
		Date      *time.Time `json:"date"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID, type, and duration are required")
		return
	}

	activity := models.Activity{
		UserID:    req.UserID,
		Type:      req.Type,
		Duration:  req.Duration,
		Calories:  req.Calories,
		Distance:  req.Distance,
		Steps:     req.Steps,
		HeartRate: req.HeartRate,
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}

	if err := c.st.AddActivity(&activity); err != nil {
		utils.Sugar.Errorf("add activity failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Zero calories falls back to duration-based credit.
	xpGain := req.Calories
	if xpGain == 0 {
		xpGain = req.Duration * 10
	}
	pointsGain := req.Calories
	if pointsGain == 0 {
		pointsGain = req.Duration * 5
	}

	gamification := c.st.GamificationOrDefault(req.UserID)
	gamification.XP += xpGain
	gamification.Points += pointsGain
	if err := c.st.SaveGamification(gamification); err != nil {
		utils.Sugar.Errorf("credit gamification failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	activitiesLogged.Inc()
	utils.Success(ctx, gin.H{
		"activity":     activity,
		"gamification": gamification,
	})
}

// Sync handles POST /activity/sync: bulk append without gamification credit.
func (c *ActivityController) Sync(ctx *gin.Context) {
	type item struct {
		Type      string     `json:"type"`
		Duration  int        `json:"duration"`
		Calories  int        `json:"calories"`
		Distance  float64    `json:"distance"`
		Steps     int        `json:"steps"`
		HeartRate int        `json:"heartRate"`
		Date      *time.Time `json:"date"`
	}
	type request struct {
		UserID     string `json:"userId" binding:"required"`
		Activities []item `json:"activities" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID and activities array are required")
		return
	}

	synced := make([]models.Activity, 0, len(req.Activities))
	for _, it := range req.Activities {
		activity := models.Activity{
			UserID:    req.UserID,
			Type:      it.Type,
			Duration:  it.Duration,
			Calories:  it.Calories,
			Distance:  it.Distance,
			Steps:     it.Steps,
			HeartRate: it.HeartRate,
		}
		if activity.Type == "" {
			activity.Type = "Synced Activity"
		}
		if it.Date != nil {
			activity.Date = *it.Date
		}
		if err := c.st.AddActivity(&activity); err != nil {
			utils.Sugar.Errorf("sync activity failed: %v", err)
			utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}
		synced = append(synced, activity)
	}

	utils.Success(ctx, gin.H{
		"activities": synced,
		"count":      len(synced),
	})
}

// Update handles PATCH /activity/:id with a shallow field merge.
func (c *ActivityController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var patch models.ActivityPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	activity, err := c.st.UpdateActivity(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, "Activity not found")
			return
		}
		utils.Sugar.Errorf("update activity failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.Success(ctx, gin.H{"activity": activity})
}

// Delete handles DELETE /activity/:id.
func (c *ActivityController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.st.DeleteActivity(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, "Activity not found")
			return
		}
		utils.Sugar.Errorf("delete activity failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.Success(ctx, gin.H{})
}

// List handles GET /activity/list?userId=...; insertion order is preserved.
func (c *ActivityController) List(ctx *gin.Context) {
	userID := strings.TrimSpace(ctx.Query("userId"))
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	activities := c.st.ActivitiesByUser(userID)
	utils.Success(ctx, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}
