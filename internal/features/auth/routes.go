package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the account endpoints on the /auth group.
// requireAuth guards the endpoints that act on the signed in user and
// limiter, when not nil, throttles the credential endpoints.
func RegisterRoutes(auth *gin.RouterGroup, h *Handler, requireAuth, limiter gin.HandlerFunc) {
	credentials := auth.Group("")
	if limiter != nil {
		credentials.Use(limiter)
	}
	{
		credentials.POST("/signup", h.SignUp)
		credentials.POST("/signin", h.SignIn)
	}

	auth.PUT("/update-password", requireAuth, h.UpdatePassword)
	auth.GET("/info", requireAuth, h.Info)
}
