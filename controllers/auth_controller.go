package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitarc/fitarc/config"
	"github.com/fitarc/fitarc/models"
	"github.com/fitarc/fitarc/store"
	"github.com/fitarc/fitarc/utils"
)

// mockLoginPoints is the placeholder points value attached to the login
// response for display. Authentication here is a mock: the password is
// compared in plaintext and no session or token is issued.
const mockLoginPoints = 1234

// AuthController handles signup, login and public user lookup.
type AuthController struct {
	st store.Store
}

// NewAuthController creates an AuthController over the injected store.
func NewAuthController(st store.Store) *AuthController {
	return &AuthController{st: st}
}

// CreateUser handles POST /user/create.
func (a *AuthController) CreateUser(ctx *gin.Context) {
	type request struct {
		Email       string              `json:"email" binding:"required"`
		Password    string              `json:"password" binding:"required"`
		Name        string              `json:"name" binding:"required"`
		Age         *int                `json:"age"`
		Weight      *float64            `json:"weight"`
		Height      *float64            `json:"height"`
		Goals       []string            `json:"goals"`
		Preferences *models.Preferences `json:"preferences"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Email, password, and name are required")
		return
	}

	user := models.User{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		Weight:   req.Weight,
		Height:   req.Height,
		Goals:    req.Goals,
	}
	if user.Goals == nil {
		user.Goals = []string{}
	}
	if req.Preferences != nil {
		user.Prefs = *req.Preferences
		if user.Prefs.ActivityTypes == nil {
			user.Prefs.ActivityTypes = []string{}
		}
	} else {
		user.Prefs = models.DefaultPreferences()
	}

	if err := a.st.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			utils.Error(ctx, http.StatusConflict, "User already exists")
			return
		}
		utils.Sugar.Errorf("create user failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.Sugar.Infow("user created", "userId", user.ID)
	utils.Success(ctx, gin.H{"user": user})
}

// Login handles POST /auth/login.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, ok := a.st.UserByEmail(req.Email)
	if !ok || user.Password != req.Password {
		utils.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	type loginUser struct {
		models.User
		Points int `json:"points"`
	}

	utils.Success(ctx, gin.H{"user": loginUser{User: user, Points: mockLoginPoints}})
}

// GetUser handles GET /user/:id, with a best-effort Redis read-through cache.
func (a *AuthController) GetUser(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		utils.Error(ctx, http.StatusBadRequest, "User ID is required")
		return
	}

	cacheKey := "cache:user:" + id
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	user, ok := a.st.UserByID(id)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, "User not found")
		return
	}

	ttl := time.Duration(config.Get().CacheTTLSec) * time.Second
	utils.CacheSetJSON(cacheKey, gin.H{"success": true, "user": user}, ttl)
	utils.Success(ctx, gin.H{"user": user})
}
