package media

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/filmdeck/internal/features/queries"
	"github.com/xyz-asif/filmdeck/internal/pkg/logger"
	"github.com/xyz-asif/filmdeck/internal/pkg/omdb"
)

const upstreamBody = `{"Title":"The Shawshank Redemption","imdbID":"tt0111161","Response":"True"}`

func newRouter(t *testing.T, upstream http.HandlerFunc) (*gin.Engine, *fakeLog) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	return newRouterWithBase(t, srv.URL)
}

func newRouterWithBase(t *testing.T, base string) (*gin.Engine, *fakeLog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := omdb.NewClient(omdb.Config{BaseURL: base, APIKey: "k"})
	require.NoError(t, err)
	ql := &fakeLog{j: &journal{}}

	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(NewService(client, ql, nil, logger.Discard())))
	return r, ql
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func errBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRelay_SuccessIsVerbatim(t *testing.T) {
	r, _ := newRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(upstreamBody))
	})

	w := get(r, "/api/media/id/tt0111161")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, upstreamBody, w.Body.String())
	require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestRelay_UpstreamStatusIsKept(t *testing.T) {
	r, _ := newRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
	})

	w := get(r, "/api/media/title/Heat?year=1995")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := errBody(t, w)
	require.Equal(t, "Unauthorized", body["error"])
	require.Equal(t, "UPSTREAM_ERROR", body["code"])
}

func TestRelay_TransportFaultIs500(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()
	require.NoError(t, ln.Close())

	r, ql := newRouterWithBase(t, base)

	w := get(r, "/api/media/search/batman/1")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := errBody(t, w)
	require.Equal(t, "Media catalog unreachable", body["error"])
	require.Equal(t, "UPSTREAM_UNREACHABLE", body["code"])

	// the query was logged before the failed call
	require.Len(t, ql.records, 1)
	require.Equal(t, "batman", ql.records[0].Query)
}

func TestBadPageAndType(t *testing.T) {
	calls := 0
	r, ql := newRouter(t, func(w http.ResponseWriter, req *http.Request) { calls++ })

	for _, path := range []string{
		"/api/media/search/batman/0",
		"/api/media/search/batman/101",
		"/api/media/search/batman/two",
		"/api/media/list/movie/action/-1",
	} {
		w := get(r, path)
		require.Equal(t, http.StatusBadRequest, w.Code, path)
		require.Equal(t, "INVALID_PAGE", errBody(t, w)["code"], path)
	}

	w := get(r, "/api/media/list/game/action/1")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "VALIDATION_FAILED", errBody(t, w)["code"])

	require.Zero(t, calls)
	require.Empty(t, ql.records)
}

func TestSearchThenLatestQueries(t *testing.T) {
	r, _ := newRouter(t, func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"Search":[],"Response":"True"}`))
	})

	require.Equal(t, http.StatusOK, get(r, "/api/media/search/superman/1").Code)
	require.Equal(t, http.StatusOK, get(r, "/api/media/search/batman/1").Code)

	w := get(r, "/api/media/latest-queries")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string           `json:"status"`
		Data   []queries.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	require.Len(t, body.Data, 2)
	require.Equal(t, "batman", body.Data[0].Query)
}

type failingLookup struct{ Lookup }

func (failingLookup) LatestQueries(context.Context) ([]queries.Record, error) {
	return nil, errors.New("db error: password=hunter2 host=10.0.0.9")
}

func TestLatestQueries_InternalErrorIsOpaque(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(failingLookup{}))

	w := get(r, "/api/media/latest-queries")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "hunter2")
}
