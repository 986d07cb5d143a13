package favorites

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the favorites endpoints on the /auth group. Every
// route requires a signed in user.
func RegisterRoutes(auth *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc) {
	auth.GET("/favorites", requireAuth, h.List)
	auth.POST("/addfavorites", requireAuth, h.Add)
	auth.DELETE("/favorites/:mediaId", requireAuth, h.Remove)
}
