package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"campusvoice/internal/app/reviews/entity"
	"campusvoice/internal/app/reviews/infrastructure"
	"campusvoice/internal/app/reviews/repository"
	"campusvoice/pkg/logger"
	"campusvoice/pkg/metrics"
)

// emailPattern is the simple local@domain.tld shape accepted for submissions.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmissionService validates and persists student submissions. It is the
// only component that creates reviews.
type SubmissionService struct {
	reviewRepo repository.ReviewRepository
	publisher  infrastructure.MessagePublisher
}

func NewSubmissionService(
	reviewRepo repository.ReviewRepository,
	publisher infrastructure.MessagePublisher,
) *SubmissionService {
	return &SubmissionService{
		reviewRepo: reviewRepo,
		publisher:  publisher,
	}
}

// Submit normalizes and validates the payload, persists the review with
// pending status, and returns the stored record. The persisted document is
// the only durable effect: the REVIEW_SUBMITTED event is best-effort.
func (s *SubmissionService) Submit(ctx context.Context, req *entity.SubmitReviewRequest, meta entity.RequestMeta) (*entity.Review, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	gender := strings.TrimSpace(req.Gender)
	department := strings.TrimSpace(req.Department)
	complaint := strings.TrimSpace(req.Complaint)

	if name == "" || email == "" || gender == "" || department == "" || complaint == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if !entity.ValidGender(gender) {
		return nil, fmt.Errorf("%w: gender must be MALE or FEMALE", ErrValidation)
	}

	ipAddress := meta.IPAddress
	if ipAddress == "" {
		ipAddress = entity.ValueUnknown
	}
	userAgent := meta.UserAgent
	if userAgent == "" {
		userAgent = entity.ValueUnknown
	}

	review := &entity.Review{
		Name:        name,
		Email:       email,
		Gender:      gender,
		Department:  department,
		Complaint:   complaint,
		SubmittedAt: time.Now(),
		Status:      entity.StatusPending,
		IPAddress:   ipAddress,
		UserAgent:   userAgent,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	metrics.ReviewsSubmitted.Inc()

	publishReviewEvent(ctx, s.publisher, entity.ReviewEvent{
		EventType:  entity.EventReviewSubmitted,
		ReviewID:   review.ID.Hex(),
		Department: review.Department,
		Status:     review.Status,
		Timestamp:  time.Now(),
	})

	return review, nil
}

// publishReviewEvent publishes one lifecycle event keyed by review id. The
// review is already persisted when this runs, so a broker failure is logged
// and never fails the request.
func publishReviewEvent(ctx context.Context, publisher infrastructure.MessagePublisher, event entity.ReviewEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Warn().Err(err).Str("event_type", event.EventType).Msg("Failed to marshal review event")
		return
	}

	if err := publisher.PublishMessage(ctx, event.ReviewID, data); err != nil {
		logger.Warn().
			Err(err).
			Str("event_type", event.EventType).
			Str("review_id", event.ReviewID).
			Msg("Failed to publish review event")
	}
}
