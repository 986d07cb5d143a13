package favorites

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := NewService(&memRepo{}, nil, logger.Discard())

	requireAuth := func(c *gin.Context) {
		c.Set("userID", c.GetHeader("X-Test-User"))
		c.Next()
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/auth"), NewHandler(svc), requireAuth)
	return r
}

func send(r http.Handler, method, path, user string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", user)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var shawshankBody = map[string]any{
	"mediaId":     "tt0111161",
	"mediaTitle":  "The Shawshank Redemption",
	"mediaType":   "movie",
	"mediaPoster": "https://example.com/p.jpg",
	"mediaRate":   9.3,
}

func TestFavoritesEndpoints(t *testing.T) {
	r := newTestRouter()

	w := send(r, "POST", "/api/auth/addfavorites", "alice", shawshankBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(r, "POST", "/api/auth/addfavorites", "alice", shawshankBody)
	require.Equal(t, http.StatusConflict, w.Code)

	w = send(r, "GET", "/api/auth/favorites", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []Favorite `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	require.Equal(t, 9.3, list.Data[0].MediaRate)

	w = send(r, "DELETE", "/api/auth/favorites/tt0111161", "bob", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = send(r, "DELETE", "/api/auth/favorites/tt0111161", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, "DELETE", "/api/auth/favorites/tt0111161", "alice", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddFavorite_BadInput(t *testing.T) {
	r := newTestRouter()

	missingRate := map[string]any{
		"mediaId": "tt1", "mediaTitle": "x", "mediaType": "movie", "mediaPoster": "p",
	}
	require.Equal(t, http.StatusBadRequest, send(r, "POST", "/api/auth/addfavorites", "alice", missingRate).Code)

	zeroRate := map[string]any{
		"mediaId": "tt1", "mediaTitle": "x", "mediaType": "movie", "mediaPoster": "p", "mediaRate": 0,
	}
	require.Equal(t, http.StatusCreated, send(r, "POST", "/api/auth/addfavorites", "alice", zeroRate).Code)

	tooHigh := map[string]any{
		"mediaId": "tt2", "mediaTitle": "x", "mediaType": "movie", "mediaPoster": "p", "mediaRate": 12,
	}
	require.Equal(t, http.StatusBadRequest, send(r, "POST", "/api/auth/addfavorites", "alice", tooHigh).Code)
}
