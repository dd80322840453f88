package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pmehta/healthtrack/config"
	"github.com/pmehta/healthtrack/logger"
	"github.com/pmehta/healthtrack/routes"
	"github.com/pmehta/healthtrack/store"
)

func main() {
	logger.Init()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg := config.Load()

	st := store.New(cfg.DataFile)
	if _, fresh := st.Load(); fresh {
		logger.Info("starting with a fresh health data document",
			zap.String("path", cfg.DataFile))
	}

	r := routes.SetupRouter(cfg, st)

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("Server failed to start", zap.Error(err))
	}
}
