package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"movie_backend/internal/feature/user/adapters"
	"movie_backend/internal/feature/user/usecase"
	"movie_backend/internal/platform/config"
	"movie_backend/internal/platform/db"
	"movie_backend/internal/platform/password"
	"movie_backend/internal/seed"
)

const seedTimeout = 2 * time.Minute

func main() {
	cfg := config.Load()
	slog.SetDefault(cfg.NewLogger())

	if err := run(cfg); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

// run opens the database described by the environment and seeds it.
func run(cfg config.Config) error {
	dbCfg := db.LoadConfigFromEnv()
	// シード前にテーブルを用意する
	dbCfg.RunMigrations = true
	gdb, err := db.Open(dbCfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	users := usecase.NewUserUsecase(adapters.NewUserRepository(gdb), password.NewHasher(cfg.BcryptCost))

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	_, err = seed.New(gdb, users).Run(ctx)
	return err
}
