package routes

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/filmdeck/internal/pkg/response"
)

// CheckFunc reports whether one dependency is reachable.
type CheckFunc func(ctx context.Context) error

const readyTimeout = 3 * time.Second

func health(c *gin.Context) {
	response.Success(c, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// ready runs every check and answers 503 naming the ones that failed.
func ready(checks map[string]CheckFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		status := make(map[string]string, len(checks))
		var failed []string
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status[name] = "unavailable"
				failed = append(failed, name)
				continue
			}
			status[name] = "ok"
		}

		if len(failed) > 0 {
			sort.Strings(failed)
			response.ServiceUnavailable(c, "Dependencies unavailable: "+strings.Join(failed, ", "), "NOT_READY")
			return
		}
		response.Success(c, status)
	}
}
