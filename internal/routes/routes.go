package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xyz-asif/filmdeck/internal/features/auth"
	"github.com/xyz-asif/filmdeck/internal/features/favorites"
	"github.com/xyz-asif/filmdeck/internal/features/media"
	"github.com/xyz-asif/filmdeck/internal/pkg/metrics"
)

// Dependencies are the handlers and middleware built in main.
type Dependencies struct {
	Auth      *auth.Handler
	Favorites *favorites.Handler
	Media     *media.Handler

	RequireAuth gin.HandlerFunc
	// CredentialLimiter guards signup and signin. Nil disables it.
	CredentialLimiter gin.HandlerFunc

	// Metrics is optional. When set, /metrics is served.
	Metrics *metrics.Metrics
	Checks  map[string]CheckFunc
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", health)
	router.GET("/ready", ready(deps.Checks))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	auth.RegisterRoutes(authGroup, deps.Auth, deps.RequireAuth, deps.CredentialLimiter)
	favorites.RegisterRoutes(authGroup, deps.Favorites, deps.RequireAuth)

	media.RegisterRoutes(api, deps.Media)
}
