package auth

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/filmdeck/internal/pkg/response"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

// AccountService is the subset of Service the handler needs.
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*Profile, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

type Handler struct {
	svc AccountService
}

func NewHandler(svc AccountService) *Handler {
	return &Handler{svc: svc}
}

// SignUp godoc
// @Summary Register a new user
// @Description Register with email, password and optional profile fields. The password needs at least 5 characters with a digit, a lowercase letter, an uppercase letter and a symbol.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "User registration data"
// @Success 201 {object} response.SuccessResponse{data=Profile}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "User already exists"
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/signup [post]
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	profile, err := h.svc.Register(c.Request.Context(), RegisterInput{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Forbidden(c, ErrEmailTaken.Error(), "USER_EXISTS")
			return
		}
		response.FromError(c, err)
		return
	}

	response.Created(c, profile)
}

// SignIn godoc
// @Summary Sign in
// @Description Exchange email and password for a bearer token valid for 30 minutes
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "User login credentials"
// @Success 200 {object} response.SuccessResponse{data=TokenResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/signin [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			response.Unauthorized(c, "Wrong email or password", "INVALID_CREDENTIALS")
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, token)
}

// UpdatePassword godoc
// @Summary Change password
// @Description Replace the password of the signed in user after checking the current one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} response.SuccessResponse{data=response.MessageData}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/update-password [put]
func (h *Handler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), c.GetString("userID"), req.Password, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, "Password updated successfully.")
}

// Info godoc
// @Summary Get current user profile
// @Description Get the profile of the currently authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=Profile}
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/info [get]
func (h *Handler) Info(c *gin.Context) {
	profile, err := h.svc.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, profile)
}
