package dto

import (
	"time"

	"talentiq_backend/internal/models"
)

// --- Job Requests ---

type CreateJobRequest struct {
	Title          string     `json:"title" binding:"required,min=3,max=150"`
	Description    string     `json:"description" binding:"omitempty,max=10000"`
	City           string     `json:"city"`
	EmploymentType string     `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract internship"`
	SalaryMin      float64    `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax      float64    `json:"salary_max" binding:"omitempty,min=0,gtefield=SalaryMin"`
	ExperienceMin  int        `json:"experience_min" binding:"omitempty,min=0,max=60"`
	Skills         []string   `json:"skills"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

type UpdateJobRequest struct {
	Title          *string    `json:"title,omitempty" binding:"omitempty,min=3,max=150"`
	Description    *string    `json:"description,omitempty" binding:"omitempty,max=10000"`
	City           *string    `json:"city,omitempty"`
	EmploymentType *string    `json:"employment_type,omitempty" binding:"omitempty,oneof=full_time part_time contract internship"`
	SalaryMin      *float64   `json:"salary_min,omitempty" binding:"omitempty,min=0"`
	SalaryMax      *float64   `json:"salary_max,omitempty" binding:"omitempty,min=0"`
	ExperienceMin  *int       `json:"experience_min,omitempty" binding:"omitempty,min=0,max=60"`
	Skills         []string   `json:"skills,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

// --- Search Criteria ---

type JobSearchRequest struct {
	Query          string   `form:"query"`
	City           string   `form:"city"`
	Skills         []string `form:"skills[]"`
	EmploymentType string   `form:"employment_type" binding:"omitempty,oneof=full_time part_time contract internship"`
	MinSalary      *float64 `form:"min_salary" binding:"omitempty,min=0"`
	MaxSalary      *float64 `form:"max_salary" binding:"omitempty,min=0"`
	// Drafts and archived postings are never searchable; owners use /jobs/mine.
	Status   string `form:"status" binding:"omitempty,oneof=open closed"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// --- Job Responses ---

type JobResponse struct {
	ID             string           `json:"id"`
	RecruiterID    string           `json:"recruiter_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	City           string           `json:"city,omitempty"`
	EmploymentType string           `json:"employment_type,omitempty"`
	SalaryMin      float64          `json:"salary_min"`
	SalaryMax      float64          `json:"salary_max"`
	ExperienceMin  int              `json:"experience_min"`
	Skills         []string         `json:"skills"`
	Status         models.JobStatus `json:"status"`
	Deadline       *time.Time       `json:"deadline,omitempty"`
	Views          int              `json:"views"`
	Applications   int64            `json:"applications,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type JobListResponse struct {
	Jobs       []*JobResponse `json:"jobs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
