package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/warbler-backend/docs" // registra o spec OpenAPI
	"github.com/rafabene/warbler-backend/internal/handlers/middleware"
	"github.com/rafabene/warbler-backend/internal/infrastructure/i18n"
)

// RouterConfig contém o que o router precisa além dos handlers
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	I18n           *i18n.Service
}

// NewRouter monta o gin.Engine com middlewares e rotas
func NewRouter(cfg RouterConfig, auth *AuthHandler, users *UserHandler, messages *MessageHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	// Middleware i18n
	if cfg.I18n != nil {
		router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	}

	// Middleware CORS
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas de autenticação
	router.POST("/signup", auth.Signup)
	router.POST("/login", auth.Login)
	router.GET("/logout", auth.Logout)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Leitura pública
		v1.GET("/users", users.ListUsers)
		v1.GET("/users/:id", users.GetUser)
		v1.GET("/users/:id/followers", users.Followers)
		v1.GET("/users/:id/following", users.Following)
		v1.GET("/users/:id/likes", users.Likes)
		v1.GET("/users/:id/messages", users.Messages)
		v1.GET("/messages/:id", messages.GetMessage)

		// Requer sessão
		authed := v1.Group("")
		authed.Use(auth.RequireSession())
		{
			authed.PATCH("/users/me", users.UpdateProfile)
			authed.DELETE("/users/me", users.DeleteAccount)
			authed.POST("/users/follow/:id", users.Follow)
			authed.DELETE("/users/follow/:id", users.Unfollow)

			authed.POST("/messages", messages.CreateMessage)
			authed.DELETE("/messages/:id", messages.DeleteMessage)
			authed.POST("/messages/:id/like", messages.ToggleLike)
			authed.GET("/timeline", messages.Timeline)
		}
	}

	return router
}
