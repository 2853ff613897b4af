package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusvoice/internal/app/reviews/entity"
	"campusvoice/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, req *entity.SubmitReviewRequest, meta entity.RequestMeta) (*entity.Review, error) {
	args := m.Called(ctx, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func setupTestRouter(submissions SubmissionServiceInterface, admin AdminServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRoutes(NewReviewHandler(submissions), NewAdminHandler(admin))
}

func submitBody() []byte {
	body, _ := json.Marshal(entity.SubmitReviewRequest{
		Name:       "Ann",
		Email:      "ANN@X.com",
		Gender:     "FEMALE",
		Department: "CSE",
		Complaint:  "noisy labs",
	})
	return body
}

func TestSubmitReview_Created(t *testing.T) {
	submissions := new(MockSubmissionService)
	router := setupTestRouter(submissions, new(MockAdminService))

	reviewID := primitive.NewObjectID()
	stored := &entity.Review{ID: reviewID, Name: "Ann", Email: "ann@x.com", Status: entity.StatusPending}

	submissions.On("Submit", mock.Anything, mock.AnythingOfType("*entity.SubmitReviewRequest"), mock.MatchedBy(func(meta entity.RequestMeta) bool {
		return meta.IPAddress == "203.0.113.9" && meta.UserAgent == "test-agent"
	})).Return(stored, nil)

	req, _ := http.NewRequest(http.MethodPost, "/api/reviews", bytes.NewBuffer(submitBody()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("User-Agent", "test-agent")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp entity.SubmitReviewResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, reviewID.Hex(), resp.ID)
}

func TestSubmitReview_InvalidJSON(t *testing.T) {
	submissions := new(MockSubmissionService)
	router := setupTestRouter(submissions, new(MockAdminService))

	req, _ := http.NewRequest(http.MethodPost, "/api/reviews", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	submissions.AssertNotCalled(t, "Submit")
}

func TestSubmitReview_MissingField(t *testing.T) {
	submissions := new(MockSubmissionService)
	router := setupTestRouter(submissions, new(MockAdminService))

	body, _ := json.Marshal(entity.SubmitReviewRequest{
		Name:   "Ann",
		Gender: "FEMALE",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	submissions.AssertNotCalled(t, "Submit")
}

func TestSubmitReview_ServiceValidation(t *testing.T) {
	submissions := new(MockSubmissionService)
	router := setupTestRouter(submissions, new(MockAdminService))

	submissions.On("Submit", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: invalid email format", service.ErrValidation))

	req, _ := http.NewRequest(http.MethodPost, "/api/reviews", bytes.NewBuffer(submitBody()))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReview_StoreDown(t *testing.T) {
	submissions := new(MockSubmissionService)
	router := setupTestRouter(submissions, new(MockAdminService))

	submissions.On("Submit", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %v", service.ErrStoreUnavailable, errors.New("connection refused to mongodb://internal")))

	req, _ := http.NewRequest(http.MethodPost, "/api/reviews", bytes.NewBuffer(submitBody()))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// internal store detail must not leak to the caller
	assert.NotContains(t, w.Body.String(), "mongodb://")
	assert.Contains(t, w.Body.String(), "Failed to submit review")
}
