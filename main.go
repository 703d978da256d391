package main

import (
	"github.com/fitarc/fitarc/config"
	"github.com/fitarc/fitarc/routes"
	"github.com/fitarc/fitarc/store"
	"github.com/fitarc/fitarc/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	var st store.Store
	switch cfg.StoreBackend {
	case "mysql":
		db := config.InitDatabase(store.MySQLModels()...)
		st = store.NewMySQL(db)
		utils.Sugar.Info("using mysql store backend")
	default:
		st = store.NewMemory()
		utils.Sugar.Info("using in-memory store backend; data lives for the process lifetime only")
	}

	r := routes.SetupRouter(st)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
