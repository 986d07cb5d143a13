package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
)

func loggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(logger.New(buf, logger.DEBUG, "json")))
	r.POST("/api/auth/signin", func(c *gin.Context) {
		c.Set(UserIDKey, "user-7")
		c.Status(http.StatusUnauthorized)
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestLogger_OneMaskedRecord(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	body := `{"email":"alice@example.com","password":"Abc123!@"}`
	req := httptest.NewRequest("POST", "/api/auth/signin", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	require.NotContains(t, lines[0], "Abc123!@")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "WARN", rec["level"])
	require.Equal(t, "request", rec["msg"])
	require.Equal(t, "POST", rec["method"])
	require.Equal(t, "/api/auth/signin", rec["route"])
	require.Equal(t, float64(401), rec["status"])
	require.Equal(t, "user-7", rec["user_id"])
	require.NotEmpty(t, rec["request_id"])
	require.Contains(t, rec["body"], "alice@example.com")
	require.Contains(t, rec["body"], "********")
}

func TestLogger_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
	require.Empty(t, buf.String())
}

func TestSanitizeBody(t *testing.T) {
	require.Equal(t, `{"newPassword":"********"}`, sanitizeBody(`{"newPassword":"Xyz789#$"}`, "application/json"))
	require.Equal(t, "[Unparseable JSON body]", sanitizeBody(`{"password":"x"`, "application/json"))
	require.Equal(t, "[Body too large to log]", sanitizeBody(strings.Repeat("a", 2000), "text/plain"))
	require.Equal(t, "plain", sanitizeBody("plain", "text/plain"))
}
