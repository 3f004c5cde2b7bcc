package main

import (
	"log/slog"
	"os"

	"movie_backend/internal/app/di"
	"movie_backend/internal/platform/config"
	"movie_backend/internal/platform/db"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(cfg.NewLogger())

	// JWT_SECRETチェック（本番では必須）
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == config.DevJWTSecret {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	gdb, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	c, err := di.NewContainer(cfg, gdb)
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	// ルータ生成
	router := c.Router(cfg.CORSOrigins)

	slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
	if err := router.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
