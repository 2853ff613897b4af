package repository

import (
	"context"
	"errors"
	"time"

	"campusvoice/internal/app/reviews/entity"
)

var (
	// ErrReviewNotFound is returned when an operation targets a review id
	// that does not exist in the store.
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewRepository is the single-document contract against the review store.
// Any failure other than ErrReviewNotFound means the store could not serve
// the operation.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetAll(ctx context.Context) ([]entity.Review, error)
	UpdateStatus(ctx context.Context, id string, status string) (*entity.Review, error)
	Delete(ctx context.Context, id string) error
}

// SessionRepository tracks live admin session ids. A session is valid only
// while its id is present; expiry is enforced by the store's TTL.
type SessionRepository interface {
	Save(ctx context.Context, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}
