package entity

// SubmitReviewRequest is the student-facing submission payload.
type SubmitReviewRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Gender     string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Department string `json:"department" validate:"required"`
	Complaint  string `json:"complaint" validate:"required"`
}

// UpdateStatusRequest moves one review to a new status.
type UpdateStatusRequest struct {
	ReviewID string `json:"reviewId" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=pending reviewed resolved"`
}

// AdminAuthRequest validates the shared admin key.
type AdminAuthRequest struct {
	AdminKey string `json:"adminKey" validate:"required"`
}

// SubmitReviewResponse acknowledges a stored submission.
type SubmitReviewResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ReviewListResponse is the admin listing plus per-status counts. The counts
// are computed from the same snapshot as the list so they always agree.
type ReviewListResponse struct {
	Reviews  []Review `json:"reviews"`
	Total    int      `json:"total"`
	Pending  int      `json:"pending"`
	Reviewed int      `json:"reviewed"`
	Resolved int      `json:"resolved"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the standard acknowledgement payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
