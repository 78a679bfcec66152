package dto

import "time"

// ==========================
// Update Requests
// ==========================

type UpdateCandidateProfileRequest struct {
	FullName        *string  `json:"full_name,omitempty" binding:"omitempty,min=2"`
	Headline        *string  `json:"headline,omitempty" binding:"omitempty,max=120"`
	Summary         *string  `json:"summary,omitempty" binding:"omitempty,max=5000"`
	ExperienceYears *int     `json:"experience_years,omitempty" binding:"omitempty,min=0,max=60"`
	City            *string  `json:"city,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	DesiredRate     *float64 `json:"desired_rate,omitempty" binding:"omitempty,min=0"`
	IsPublic        *bool    `json:"is_public,omitempty"`
}

type UpdateRecruiterProfileRequest struct {
	CompanyName   *string `json:"company_name,omitempty" binding:"omitempty,min=2"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty" binding:"omitempty,e164"`
	Website       *string `json:"website,omitempty" binding:"omitempty,url"`
	City          *string `json:"city,omitempty"`
	Description   *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

// ==========================
// Search Criteria
// ==========================

type CandidateSearchRequest struct {
	Query         string   `form:"query"`
	City          string   `form:"city"`
	Skills        []string `form:"skills[]"`
	MinExperience *int     `form:"min_experience" binding:"omitempty,min=0"`
	MaxExperience *int     `form:"max_experience" binding:"omitempty,min=0"`
	MaxRate       *float64 `form:"max_rate" binding:"omitempty,min=0"`
	Page          int      `form:"page" binding:"omitempty,min=1"`
	PageSize      int      `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy        string   `form:"sort_by"`
	SortOrder     string   `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ==========================
// Responses
// ==========================

type CandidateProfileResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	FullName        string    `json:"full_name"`
	Headline        string    `json:"headline,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	City            string    `json:"city,omitempty"`
	Skills          []string  `json:"skills"`
	Languages       []string  `json:"languages"`
	DesiredRate     float64   `json:"desired_rate"`
	ProfileViews    int       `json:"profile_views"`
	IsPublic        bool      `json:"is_public"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RecruiterProfileResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Website       string    `json:"website,omitempty"`
	City          string    `json:"city,omitempty"`
	Description   string    `json:"description,omitempty"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CandidateListResponse struct {
	Candidates []*CandidateProfileResponse `json:"candidates"`
	Total      int64                       `json:"total"`
	Page       int                         `json:"page"`
	PageSize   int                         `json:"page_size"`
	TotalPages int                         `json:"total_pages"`
}
