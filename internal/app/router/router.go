package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "movie_backend/internal/feature/auth/transport/handler"
	categoryhandler "movie_backend/internal/feature/category/transport/handler"
	moviehandler "movie_backend/internal/feature/movie/transport/handler"
	userhandler "movie_backend/internal/feature/user/transport/handler"
	"movie_backend/internal/platform/http/handler"
	jwtmw "movie_backend/internal/platform/jwt"
)

// Handlers はルーターに登録するハンドラーの集合です。
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Category *categoryhandler.CategoryHandler
	Movie    *moviehandler.MovieHandler
	User     *userhandler.UserHandler
	Health   *handler.HealthHandler
}

// NewRouter はAPIルートを登録したgin.Engineを返します。
// corsOrigins が空の場合は全オリジンを許可します。
func NewRouter(h Handlers, verifier jwtmw.TokenVerifier, corsOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(newCORS(corsOrigins))

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	api := r.Group("/api")
	requireAuth := jwtmw.AuthRequired(verifier)

	// 認証不要
	// 新規ユーザー登録
	api.POST("/auth/register", h.Auth.Register)
	// ログイン（JWT 発行）
	api.POST("/auth/login", h.Auth.Login)

	categories := api.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", requireAuth, h.Category.Create)
		categories.PUT("/:id", requireAuth, h.Category.Update)
		categories.DELETE("/:id", requireAuth, h.Category.Delete)
	}

	movies := api.Group("/movies")
	{
		movies.GET("", h.Movie.List)
		movies.GET("/:id", h.Movie.Get)
		movies.POST("", requireAuth, h.Movie.Create)
		movies.PUT("/:id", requireAuth, h.Movie.Update)
		movies.DELETE("/:id", requireAuth, h.Movie.Delete)
	}

	users := api.Group("/users")
	{
		// ユーザー作成のみ認証不要
		users.POST("", h.User.Create)
		users.GET("", requireAuth, h.User.List)
		users.GET("/:id", requireAuth, h.User.Get)
		users.PUT("/:id", requireAuth, h.User.Update)
		users.DELETE("/:id", requireAuth, h.User.Delete)
	}

	return r
}

func newCORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	})
}
