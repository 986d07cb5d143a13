package media

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/filmdeck/internal/features/queries"
	"github.com/xyz-asif/filmdeck/internal/pkg/omdb"
	"github.com/xyz-asif/filmdeck/internal/pkg/pagination"
	"github.com/xyz-asif/filmdeck/internal/pkg/response"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

// Lookup is the subset of Service the handler needs.
type Lookup interface {
	ByID(ctx context.Context, id string) (*omdb.Result, error)
	ByTitle(ctx context.Context, title, year string) (*omdb.Result, error)
	BySearch(ctx context.Context, query string, page int) (*omdb.Result, error)
	ByTypeAndCategory(ctx context.Context, mediaType, category string, page int) (*omdb.Result, error)
	LatestQueries(ctx context.Context) ([]queries.Record, error)
}

type Handler struct {
	svc Lookup
}

func NewHandler(svc Lookup) *Handler {
	return &Handler{svc: svc}
}

// ByID godoc
// @Summary Media details by id
// @Description Full details of one title, relayed verbatim from the media catalog
// @Tags media
// @Produce json
// @Param mediaId path string true "Catalog id, e.g. tt0111161"
// @Success 200 {object} object "Upstream body"
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "Media catalog unreachable"
// @Router /media/id/{mediaId} [get]
func (h *Handler) ByID(c *gin.Context) {
	res, err := h.svc.ByID(c.Request.Context(), c.Param("mediaId"))
	relay(c, res, err)
}

// ByTitle godoc
// @Summary Media details by title
// @Description Looks a title up by name and optional year. The title is recorded in the query log.
// @Tags media
// @Produce json
// @Param title path string true "Title"
// @Param year query string false "Release year"
// @Success 200 {object} object "Upstream body"
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "Media catalog unreachable"
// @Router /media/title/{title} [get]
func (h *Handler) ByTitle(c *gin.Context) {
	res, err := h.svc.ByTitle(c.Request.Context(), c.Param("title"), c.Query("year"))
	relay(c, res, err)
}

// Search godoc
// @Summary Free-text search
// @Description Searches the catalog. The query is recorded in the query log.
// @Tags media
// @Produce json
// @Param query path string true "Search text"
// @Param page path int true "Page, 1 to 100"
// @Success 200 {object} object "Upstream body"
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "Media catalog unreachable"
// @Router /media/search/{query}/{page} [get]
func (h *Handler) Search(c *gin.Context) {
	page, err := pagination.ParsePage(c.Param("page"))
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_PAGE")
		return
	}
	res, err := h.svc.BySearch(c.Request.Context(), c.Param("query"), page)
	relay(c, res, err)
}

// List godoc
// @Summary Search within a media type
// @Description Searches one media type (movie, series or episode) for a category
// @Tags media
// @Produce json
// @Param mediaType path string true "movie, series or episode"
// @Param category path string true "Category or keyword"
// @Param page path int true "Page, 1 to 100"
// @Success 200 {object} object "Upstream body"
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "Media catalog unreachable"
// @Router /media/list/{mediaType}/{category}/{page} [get]
func (h *Handler) List(c *gin.Context) {
	page, err := pagination.ParsePage(c.Param("page"))
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_PAGE")
		return
	}
	res, err := h.svc.ByTypeAndCategory(c.Request.Context(), c.Param("mediaType"), c.Param("category"), page)
	relay(c, res, err)
}

// LatestQueries godoc
// @Summary Latest search queries
// @Description The five most recent title and search queries, newest first
// @Tags media
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]queries.Record}
// @Failure 500 {object} response.ErrorResponse
// @Router /media/latest-queries [get]
func (h *Handler) LatestQueries(c *gin.Context) {
	records, err := h.svc.LatestQueries(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, records)
}

// relay writes an upstream result. Success bodies pass through untouched and
// error statuses keep their code and reason phrase.
func relay(c *gin.Context, res *omdb.Result, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTransport):
		response.InternalServerError(c, "Media catalog unreachable", "UPSTREAM_UNREACHABLE")
	case err != nil:
		response.FromError(c, err)
	case res.OK():
		contentType := res.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		c.Data(res.StatusCode, contentType, res.Body)
	default:
		response.Error(c, res.StatusCode, res.Reason, "UPSTREAM_ERROR")
	}
}

