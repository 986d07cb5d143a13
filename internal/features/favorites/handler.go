package favorites

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/filmdeck/internal/pkg/response"
)

// Ledger is the subset of Service the handler needs.
type Ledger interface {
	List(ctx context.Context, userID string) ([]Favorite, error)
	Add(ctx context.Context, userID string, in AddInput) (*Favorite, error)
	Remove(ctx context.Context, userID, mediaID string) error
}

type Handler struct {
	svc Ledger
}

func NewHandler(svc Ledger) *Handler {
	return &Handler{svc: svc}
}

// List godoc
// @Summary List favorites
// @Description Favorites of the signed in user, newest first
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=[]Favorite}
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/favorites [get]
func (h *Handler) List(c *gin.Context) {
	favs, err := h.svc.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, favs)
}

// Add godoc
// @Summary Add a favorite
// @Description Add a media item to the favorites of the signed in user
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Media item"
// @Success 201 {object} response.SuccessResponse{data=Favorite}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already a favorite"
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/addfavorites [post]
func (h *Handler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	fav, err := h.svc.Add(c.Request.Context(), c.GetString("userID"), AddInput{
		MediaID:     req.MediaID,
		MediaTitle:  req.MediaTitle,
		MediaType:   req.MediaType,
		MediaPoster: req.MediaPoster,
		MediaRate:   *req.MediaRate,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, fav)
}

// Remove godoc
// @Summary Remove a favorite
// @Description Remove a media item from the favorites of the signed in user
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param mediaId path string true "Media ID"
// @Success 200 {object} response.SuccessResponse{data=response.MessageData}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/favorites/{mediaId} [delete]
func (h *Handler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.GetString("userID"), c.Param("mediaId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "Favorite removed successfully.")
}
