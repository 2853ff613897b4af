package handler

import (
	"context"
	"errors"
	"net/http"

	"campusvoice/internal/app/reviews/entity"
	"campusvoice/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AdminServiceInterface interface {
	ListWithCounts(ctx context.Context, credential string) (*entity.ReviewListResponse, error)
	SetStatus(ctx context.Context, credential string, id string, status string) (*entity.Review, error)
	Remove(ctx context.Context, credential string, id string) error
	Login(ctx context.Context, adminKey string) (*entity.AdminSession, error)
	Logout(ctx context.Context, credential string) error
}

// AdminHandler serves the credential-gated dashboard endpoints.
type AdminHandler struct {
	admin     AdminServiceInterface
	validator *validator.Validate
}

func NewAdminHandler(admin AdminServiceInterface) *AdminHandler {
	return &AdminHandler{
		admin:     admin,
		validator: validator.New(),
	}
}

// Login validates the shared admin key and issues a session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req entity.AdminAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	session, err := h.admin.Login(c.Request.Context(), req.AdminKey)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Invalid admin key"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Authentication failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}

// Logout revokes the caller's session token.
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.admin.Logout(c.Request.Context(), credentialFromContext(c)); err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Success: true, Message: "Logged out"})
}

// ListReviews returns every review plus per-status counts.
func (h *AdminHandler) ListReviews(c *gin.Context) {
	resp, err := h.admin.ListWithCounts(c.Request.Context(), credentialFromContext(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized access"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStatus moves one review to a new status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req entity.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	review, err := h.admin.SetStatus(c.Request.Context(), credentialFromContext(c), req.ReviewID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized access"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Review not found"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to update review"})
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview removes one review.
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	reviewID := c.Param("review_id")
	if reviewID == "" {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Review ID is required"})
		return
	}

	if err := h.admin.Remove(c.Request.Context(), credentialFromContext(c), reviewID); err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Unauthorized access"})
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Review not found"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to delete review"})
		}
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Success: true, Message: "Review deleted successfully"})
}
