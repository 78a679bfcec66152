package dto

// --- Requests ---

type MatchCandidatesRequest struct {
	Limit    int     `form:"limit" binding:"omitempty,min=1,max=100"`
	MinScore float64 `form:"min_score" binding:"omitempty,min=0,max=100"`
}

// --- Responses ---

// MatchResult ranks one candidate against a job. Reasons mirror the scoring
// rules that fired.
type MatchResult struct {
	CandidateID     string   `json:"candidate_id"`
	FullName        string   `json:"full_name,omitempty"`
	Headline        string   `json:"headline,omitempty"`
	City            string   `json:"city,omitempty"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills,omitempty"`
	Score           float64  `json:"score"`
	Reasons         []string `json:"reasons"`
}

type MatchListResponse struct {
	JobID     string         `json:"job_id"`
	Results   []*MatchResult `json:"results"`
	Evaluated int            `json:"evaluated"`
}
