package domain

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusDenied   VerificationStatus = "denied"
)

// ParseVerificationDecision accepts only the two terminal statuses an admin
// may assign to a pending request.
func ParseVerificationDecision(s string) (VerificationStatus, error) {
	switch VerificationStatus(s) {
	case VerificationStatusApproved, VerificationStatusDenied:
		return VerificationStatus(s), nil
	default:
		return "", E(CodeValidation, "decision must be approved or denied")
	}
}

type VerificationRequest struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Reason    string             `json:"reason"`
	Status    VerificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

func (r *VerificationRequest) IsPending() bool {
	return r.Status == VerificationStatusPending
}
