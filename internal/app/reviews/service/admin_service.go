package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusvoice/internal/app/reviews/entity"
	"campusvoice/internal/app/reviews/infrastructure"
	"campusvoice/internal/app/reviews/repository"
	"campusvoice/internal/app/reviews/util"
	"campusvoice/pkg/metrics"
)

// AdminService is the only component that mutates or destroys reviews. Every
// operation checks the guard before touching the repository, so a denied call
// performs no store access at all.
type AdminService struct {
	reviewRepo repository.ReviewRepository
	sessions   repository.SessionRepository
	guard      *AccessGuard
	tokens     *util.TokenManager
	publisher  infrastructure.MessagePublisher
}

func NewAdminService(
	reviewRepo repository.ReviewRepository,
	sessions repository.SessionRepository,
	guard *AccessGuard,
	tokens *util.TokenManager,
	publisher infrastructure.MessagePublisher,
) *AdminService {
	return &AdminService{
		reviewRepo: reviewRepo,
		sessions:   sessions,
		guard:      guard,
		tokens:     tokens,
		publisher:  publisher,
	}
}

// ListWithCounts returns every review plus per-status counts. The counts are
// derived from the listed slice itself, so they always agree with the list.
func (s *AdminService) ListWithCounts(ctx context.Context, credential string) (*entity.ReviewListResponse, error) {
	if !s.guard.Authorize(ctx, credential) {
		return nil, ErrUnauthorized
	}

	reviews, err := s.reviewRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	resp := &entity.ReviewListResponse{
		Reviews: reviews,
		Total:   len(reviews),
	}
	for _, r := range reviews {
		switch r.Status {
		case entity.StatusPending:
			resp.Pending++
		case entity.StatusReviewed:
			resp.Reviewed++
		case entity.StatusResolved:
			resp.Resolved++
		}
	}

	return resp, nil
}

// SetStatus moves one review to a new status and returns the updated record.
func (s *AdminService) SetStatus(ctx context.Context, credential string, id string, status string) (*entity.Review, error) {
	if !s.guard.Authorize(ctx, credential) {
		return nil, ErrUnauthorized
	}

	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be pending, reviewed or resolved", ErrValidation)
	}

	review, err := s.reviewRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	publishReviewEvent(ctx, s.publisher, entity.ReviewEvent{
		EventType:  entity.EventReviewStatusChanged,
		ReviewID:   review.ID.Hex(),
		Department: review.Department,
		Status:     review.Status,
		Timestamp:  time.Now(),
	})

	return review, nil
}

// Remove deletes one review. A second Remove on the same id reports not found.
func (s *AdminService) Remove(ctx context.Context, credential string, id string) error {
	if !s.guard.Authorize(ctx, credential) {
		return ErrUnauthorized
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	metrics.ReviewsDeleted.Inc()

	publishReviewEvent(ctx, s.publisher, entity.ReviewEvent{
		EventType: entity.EventReviewDeleted,
		ReviewID:  id,
		Timestamp: time.Now(),
	})

	return nil
}

// Login validates the raw admin key and, on success, issues a signed session
// token registered in the session store. Only the raw key can open a session;
// a session token cannot mint another one.
func (s *AdminService) Login(ctx context.Context, adminKey string) (*entity.AdminSession, error) {
	if !s.guard.AuthorizeKey(adminKey) {
		metrics.AdminLogins.WithLabelValues("failed").Inc()
		return nil, ErrUnauthorized
	}

	token, claims, err := s.tokens.Issue()
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.sessions.Save(ctx, claims.SessionID, s.tokens.TTL()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()

	return &entity.AdminSession{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the session behind the credential. A raw admin key carries
// no session, so there is nothing to revoke and the call succeeds.
func (s *AdminService) Logout(ctx context.Context, credential string) error {
	claims, err := s.tokens.Validate(credential)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}
