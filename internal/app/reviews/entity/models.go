package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review statuses. Transitions are unrestricted: the administrator may move a
// review between any two statuses.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusResolved = "resolved"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// ValueUnknown is stored when the request carries no origin IP or user agent.
const ValueUnknown = "unknown"

// ValidStatus reports whether s is one of the three review statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusReviewed || s == StatusResolved
}

// ValidGender reports whether g is one of the accepted gender values.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

// Review is a single student-submitted feedback/complaint record.
type Review struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`   // trimmed, lower-cased
	Gender      string             `json:"gender" bson:"gender"` // MALE or FEMALE
	Department  string             `json:"department" bson:"department"`
	Complaint   string             `json:"complaint" bson:"complaint"`
	SubmittedAt time.Time          `json:"submitted_at" bson:"submitted_at"` // write-once
	Status      string             `json:"status" bson:"status"`
	IPAddress   string             `json:"ip_address" bson:"ip_address"`
	UserAgent   string             `json:"user_agent" bson:"user_agent"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// RequestMeta carries transport-level origin data captured by the handler.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// Review event types published to Kafka.
const (
	EventReviewSubmitted     = "REVIEW_SUBMITTED"
	EventReviewStatusChanged = "REVIEW_STATUS_CHANGED"
	EventReviewDeleted       = "REVIEW_DELETED"
)

type ReviewEvent struct {
	EventType  string    `json:"event_type"`
	ReviewID   string    `json:"review_id"`
	Department string    `json:"department,omitempty"`
	Status     string    `json:"status,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// AdminSession is the credential handed back after a successful admin login.
type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
