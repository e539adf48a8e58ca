package domain

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationDecision accepts the terminal statuses a job owner may set.
func ParseApplicationDecision(s string) (ApplicationStatus, error) {
	if s == "" {
		return "", E(CodeValidation, "status is required")
	}
	switch ApplicationStatus(s) {
	case ApplicationStatusAccepted, ApplicationStatusRejected:
		return ApplicationStatus(s), nil
	default:
		return "", E(CodeValidation, "status must be accepted or rejected")
	}
}

type Application struct {
	ID          uuid.UUID         `json:"id"`
	JobID       uuid.UUID         `json:"job"`
	UserID      uuid.UUID         `json:"user"`
	Status      ApplicationStatus `json:"status"`
	Resume      string            `json:"resume"`
	CoverLetter string            `json:"cover_letter"`
	AppliedAt   time.Time         `json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (a *Application) IsPending() bool {
	return a.Status == ApplicationStatusPending
}
