package media

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public media endpoints under /media.
func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	media := router.Group("/media")
	{
		media.GET("/id/:mediaId", h.ByID)
		media.GET("/title/:title", h.ByTitle)
		media.GET("/search/:query/:page", h.Search)
		media.GET("/list/:mediaType/:category/:page", h.List)
		media.GET("/latest-queries", h.LatestQueries)
	}
}
