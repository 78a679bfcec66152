package dto

import (
	"time"

	"talentiq_backend/internal/models"
)

// --- Application Requests ---

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,is-application-status"`
}

type ApplicationListRequest struct {
	Status   string `form:"status" binding:"omitempty,is-application-status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// --- Application Responses ---

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	CandidateID string                   `json:"candidate_id"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	DecidedAt   *time.Time               `json:"decided_at,omitempty"`
	Job         *JobResponse             `json:"job,omitempty"`
	Candidate   *ApplicantSummary        `json:"candidate,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ApplicantSummary is the compact candidate view recruiters see on an
// application listing.
type ApplicantSummary struct {
	UserID          string   `json:"user_id"`
	FullName        string   `json:"full_name,omitempty"`
	Headline        string   `json:"headline,omitempty"`
	City            string   `json:"city,omitempty"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills,omitempty"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
	TotalPages   int                    `json:"total_pages"`
}
