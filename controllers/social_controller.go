package controllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fitarc/fitarc/models"
	"github.com/fitarc/fitarc/store"
	"github.com/fitarc/fitarc/utils"
)

// SocialController handles friends, nudges and the leaderboard.
type SocialController struct {
	st store.Store
}

// NewSocialController creates a SocialController over the injected store.
func NewSocialController(st store.Store) *SocialController {
	return &SocialController{st: st}
}

// AddFriend handles POST /social/friend. The edge is one-directional and
// idempotent; the friend id is not checked against the directory.
func (c *SocialController) AddFriend(ctx *gin.Context) {
	type request struct {
		UserID   string `json:"userId" binding:"required"`
		FriendID string `json:"friendId" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID and friend ID are required")
		return
	}

	social := c.st.SocialOrDefault(req.UserID)
	if !social.HasFriend(req.FriendID) {
		social.Friends = append(social.Friends, req.FriendID)
		if err := c.st.SaveSocial(social); err != nil {
			utils.Sugar.Errorf("save social failed: %v", err)
			utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	utils.Success(ctx, gin.H{"social": social})
}

// Data handles GET /social/data?userId=...: friends, teams and the user's
// rank in a freshly computed leaderboard.
func (c *SocialController) Data(ctx *gin.Context) {
	userID := strings.TrimSpace(ctx.Query("userId"))
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	social := c.st.SocialOrDefault(userID)
	leaderboard := c.computeLeaderboard()

	// Absent users rank implicitly last.
	rank := len(leaderboard) + 1
	for _, entry := range leaderboard {
		if entry.UserID == userID {
			rank = entry.Rank
			break
		}
	}

	utils.Success(ctx, gin.H{
		"friends": social.Friends,
		"teams":   social.Teams,
		"rank":    rank,
	})
}

// Leaderboard handles GET /social/leaderboard.
func (c *SocialController) Leaderboard(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"leaderboard": c.computeLeaderboard()})
}

// Nudge handles POST /social/nudge. Validation only; nothing is persisted or
// delivered beyond a log line.
func (c *SocialController) Nudge(ctx *gin.Context) {
	type request struct {
		UserID   string `json:"userId" binding:"required"`
		FriendID string `json:"friendId" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "User ID, friend ID, and message are required")
		return
	}

	utils.Sugar.Infow("nudge sent",
		"userId", req.UserID,
		"friendId", req.FriendID,
		"message", utils.Sanitize(req.Message),
	)
	utils.Success(ctx, gin.H{"message": "Nudge sent successfully"})
}

// computeLeaderboard rebuilds the full ranking on every call: all users,
// sorted by total score descending. The sort is stable, so ties keep
// directory order, and ranks are dense 1-based positions.
func (c *SocialController) computeLeaderboard() []models.LeaderboardEntry {
	users := c.st.Users()
	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		social := c.st.SocialOrDefault(u.ID)
		entries = append(entries, models.LeaderboardEntry{
			UserID:   u.ID,
			UserName: u.Name,
			Score:    social.TotalScore,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
