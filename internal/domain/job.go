package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type WorkingArea string

const (
	WorkingAreaOnsite WorkingArea = "onsite"
	WorkingAreaRemote WorkingArea = "remote"
	WorkingAreaHybrid WorkingArea = "hybrid"
)

type Longevity string

const (
	LongevityContractual Longevity = "contractual"
	LongevityPermanent   Longevity = "permanent"
)

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	JobsCount   int32     `json:"jobs_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Job struct {
	ID                uuid.UUID   `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Location          string      `json:"location"`
	WorkingArea       WorkingArea `json:"working_area"`
	Longevity         Longevity   `json:"longevity"`
	Type              JobType     `json:"type"`
	CategoryID        *uuid.UUID  `json:"category,omitempty"`
	PostedBy          uuid.UUID   `json:"posted_by"`
	IsActive          bool        `json:"is_active"`
	ApplicationsCount int32       `json:"applications_count"`
	PostedAt          time.Time   `json:"posted_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Validate checks field-level invariants shared by create and update.
func (j *Job) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return E(CodeValidation, "title is required")
	}
	if strings.TrimSpace(j.Description) == "" {
		return E(CodeValidation, "description is required")
	}
	switch j.WorkingArea {
	case WorkingAreaOnsite, WorkingAreaRemote, WorkingAreaHybrid:
	default:
		return E(CodeValidation, "working_area must be onsite, remote, or hybrid")
	}
	switch j.Longevity {
	case LongevityContractual, LongevityPermanent:
	default:
		return E(CodeValidation, "longevity must be contractual or permanent")
	}
	switch j.Type {
	case JobTypeFullTime, JobTypePartTime:
	default:
		return E(CodeValidation, "type must be full-time or part-time")
	}
	// Remote postings carry no location.
	if j.WorkingArea == WorkingAreaRemote && strings.TrimSpace(j.Location) != "" {
		return E(CodeValidation, "remote jobs must not set a location")
	}
	return nil
}

// JobFilter narrows public job listings.
type JobFilter struct {
	CategoryID  *uuid.UUID
	IsActive    *bool
	WorkingArea WorkingArea
	Type        JobType
}
