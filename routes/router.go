package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitarc/fitarc/config"
	"github.com/fitarc/fitarc/controllers"
	"github.com/fitarc/fitarc/middleware"
	"github.com/fitarc/fitarc/store"
	"github.com/fitarc/fitarc/utils"
)

// SetupRouter wires routes, middlewares, and controllers over the injected
// store.
func SetupRouter(st store.Store) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Use(middleware.RequestMetrics())
	r.Use(middleware.RateLimit())

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authController := controllers.NewAuthController(st)
	activityController := controllers.NewActivityController(st)
	gamificationController := controllers.NewGamificationController(st)
	socialController := controllers.NewSocialController(st)
	coachController := controllers.NewCoachController()

	userGroup := r.Group("/user")
	userGroup.POST("/create", authController.CreateUser)
	userGroup.GET("/:id", authController.GetUser)

	r.POST("/auth/login", authController.Login)

	activityGroup := r.Group("/activity")
	activityGroup.POST("/log", activityController.Log)
	activityGroup.POST("/sync", activityController.Sync)
	activityGroup.GET("/list", activityController.List)
	activityGroup.PATCH("/:id", activityController.Update)
	activityGroup.DELETE("/:id", activityController.Delete)

	gamificationGroup := r.Group("/gamification")
	gamificationGroup.POST("/update", gamificationController.Update)
	gamificationGroup.POST("/level-up", gamificationController.LevelUp)
	gamificationGroup.POST("/badge", gamificationController.AddBadge)

	socialGroup := r.Group("/social")
	socialGroup.POST("/friend", socialController.AddFriend)
	socialGroup.GET("/data", socialController.Data)
	socialGroup.GET("/leaderboard", socialController.Leaderboard)
	socialGroup.POST("/nudge", socialController.Nudge)

	coachGroup := r.Group("/coach")
	coachGroup.POST("/nudge", coachController.Nudge)
	coachGroup.GET("/nudges", coachController.Nudges)
	coachGroup.GET("/workout-plan", coachController.WorkoutPlan)
	coachGroup.POST("/feedback", coachController.Feedback)
	coachGroup.POST("/chat", coachController.Chat)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "Route not found")
	})

	return r
}
