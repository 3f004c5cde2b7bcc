// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"movie_backend/internal/app/router"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	authusecase "movie_backend/internal/feature/auth/usecase"
	categoryadapters "movie_backend/internal/feature/category/adapters"
	categoryhandler "movie_backend/internal/feature/category/transport/handler"
	categoryusecase "movie_backend/internal/feature/category/usecase"
	movieadapters "movie_backend/internal/feature/movie/adapters"
	moviehandler "movie_backend/internal/feature/movie/transport/handler"
	movieusecase "movie_backend/internal/feature/movie/usecase"
	useradapters "movie_backend/internal/feature/user/adapters"
	userhandler "movie_backend/internal/feature/user/transport/handler"
	userusecase "movie_backend/internal/feature/user/usecase"
	"movie_backend/internal/platform/config"
	"movie_backend/internal/platform/http/handler"
	jwtmw "movie_backend/internal/platform/jwt"
	"movie_backend/internal/platform/password"
)

// Container holds the wired application components.
type Container struct {
	Tokens   *jwtmw.TokenService
	Users    *userusecase.UserUsecase
	Handlers router.Handlers
}

// NewContainer wires repositories, usecases and handlers on top of db.
func NewContainer(cfg config.Config, db *gorm.DB) (*Container, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	tokens := jwtmw.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)
	hasher := password.NewHasher(cfg.BcryptCost)

	// Repository
	userRepo := useradapters.NewUserRepository(db)
	categoryRepo := categoryadapters.NewCategoryRepository(db)
	movieRepo := movieadapters.NewMovieRepository(db)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, hasher)
	authUC := authusecase.NewAuthUsecase(userUC, userRepo, hasher, tokens)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo, movieRepo)
	movieUC := movieusecase.NewMovieUsecase(movieRepo, categoryRepo)

	return &Container{
		Tokens: tokens,
		Users:  userUC,
		Handlers: router.Handlers{
			Auth:     authhandler.NewAuthHandler(authUC),
			Category: categoryhandler.NewCategoryHandler(categoryUC),
			Movie:    moviehandler.NewMovieHandler(movieUC),
			User:     userhandler.NewUserHandler(userUC),
			Health:   handler.NewHealthHandler(sqlDB),
		},
	}, nil
}

// Router builds the HTTP engine for the container's handlers.
func (c *Container) Router(corsOrigins []string) *gin.Engine {
	return router.NewRouter(c.Handlers, c.Tokens, corsOrigins)
}
