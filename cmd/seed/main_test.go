package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	userentity "movie_backend/internal/feature/user/domain/entity"
	"movie_backend/internal/platform/config"
	"movie_backend/internal/platform/db"
)

func TestRun_SeedsSQLiteTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv("DB_DRIVER", db.DriverSQLite)
	t.Setenv("SQLITE_PATH", path)
	cfg := config.Config{BcryptCost: bcrypt.MinCost}

	require.NoError(t, run(cfg))
	require.NoError(t, run(cfg), "re-running the seeder must succeed")

	gdb, err := db.Open(db.Config{Driver: db.DriverSQLite, SQLitePath: path, ConnectTimeout: time.Second})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var users int64
	require.NoError(t, gdb.Model(&userentity.User{}).Count(&users).Error)
	assert.Equal(t, int64(3), users)
}

func TestRun_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	err := run(config.Config{BcryptCost: bcrypt.MinCost})

	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
