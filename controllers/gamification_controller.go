package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitarc/fitarc/store"
	"github.com/fitarc/fitarc/utils"
)

// GamificationController handles the XP/level/badge endpoints.
type GamificationController struct {
	st store.Store
}

// NewGamificationController creates a GamificationController over the
// injected store.
func NewGamificationController(st store.Store) *GamificationController {
	return &GamificationController{st: st}
}

// Update handles POST /gamification/update: additive XP/points deltas.
func (c *GamificationController) Update(ctx *gin.Context) {
	type request struct {
		UserID string `json:"userId" binding:"required"`
		XP     int    `json:"xp"`
		Points int    `json:"points"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	gamification := c.st.GamificationOrDefault(req.UserID)
	gamification.XP += req.XP
	gamification.Points += req.Points
	if err := c.st.SaveGamification(gamification); err != nil {
		utils.Sugar.Errorf("save gamification failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.Success(ctx, gin.H{"gamification": gamification})
}

// LevelUp handles POST /gamification/level-up. The threshold is
// level*1000 XP and a qualifying call advances exactly one level, even when
// the XP would clear several thresholds; callers invoke it once per
// XP-awarding event.
func (c *GamificationController) LevelUp(ctx *gin.Context) {
	type request struct {
		UserID string `json:"userId" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	gamification := c.st.GamificationOrDefault(req.UserID)
	levelUp := false
	if gamification.XP >= gamification.XPForNextLevel() {
		gamification.Level++
		if err := c.st.SaveGamification(gamification); err != nil {
			utils.Sugar.Errorf("save gamification failed: %v", err)
			utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}
		levelUp = true
		levelUps.Inc()
		utils.Sugar.Infow("level up", "userId", req.UserID, "level", gamification.Level)
	}

	utils.Success(ctx, gin.H{
		"levelUp":      levelUp,
		"gamification": gamification,
	})
}

// AddBadge handles POST /gamification/badge with set semantics: adding an
// already-held badge is a no-op.
func (c *GamificationController) AddBadge(ctx *gin.Context) {
	type request struct {
		UserID  string `json:"userId" binding:"required"`
		BadgeID string `json:"badgeId" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID and badge ID are required")
		return
	}

	gamification := c.st.GamificationOrDefault(req.UserID)
	if !gamification.HasBadge(req.BadgeID) {
		gamification.Badges = append(gamification.Badges, req.BadgeID)
		if err := c.st.SaveGamification(gamification); err != nil {
			utils.Sugar.Errorf("save gamification failed: %v", err)
			utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	utils.Success(ctx, gin.H{"gamification": gamification})
}
