package handler

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"campusvoice/internal/app/reviews/entity"
	"campusvoice/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type SubmissionServiceInterface interface {
	Submit(ctx context.Context, req *entity.SubmitReviewRequest, meta entity.RequestMeta) (*entity.Review, error)
}

// ReviewHandler serves the public submission endpoint.
type ReviewHandler struct {
	submissions SubmissionServiceInterface
	validator   *validator.Validate
}

func NewReviewHandler(submissions SubmissionServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		submissions: submissions,
		validator:   validator.New(),
	}
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req entity.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	review, err := h.submissions.Submit(c.Request.Context(), &req, requestMeta(c))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to submit review"})
		return
	}

	c.JSON(http.StatusCreated, entity.SubmitReviewResponse{
		Success: true,
		Message: "Review submitted successfully",
		ID:      review.ID.Hex(),
	})
}

// requestMeta captures the submission origin: first X-Forwarded-For entry
// when present, otherwise the transport remote address. The service falls
// back to "unknown" when neither exists.
func requestMeta(c *gin.Context) entity.RequestMeta {
	ip := ""
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	} else if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		ip = host
	}

	return entity.RequestMeta{
		IPAddress: ip,
		UserAgent: c.Request.UserAgent(),
	}
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
