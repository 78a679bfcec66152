package dto

import (
	"time"

	"talentiq_backend/internal/models"
)

// --- Question Bank Requests ---

type CreateQuestionRequest struct {
	Prompt     string   `json:"prompt" binding:"required,min=10,max=1000"`
	Type       string   `json:"type" binding:"required,is-question-type"`
	Difficulty int      `json:"difficulty" binding:"omitempty,min=1,max=5"`
	Tags       []string `json:"tags"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

type UpdateQuestionRequest struct {
	Prompt     *string  `json:"prompt,omitempty" binding:"omitempty,min=10,max=1000"`
	Type       *string  `json:"type,omitempty" binding:"omitempty,is-question-type"`
	Difficulty *int     `json:"difficulty,omitempty" binding:"omitempty,min=1,max=5"`
	Tags       []string `json:"tags,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

type SetQuestionActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type QuestionListRequest struct {
	Type          string   `form:"type" binding:"omitempty,is-question-type"`
	Tags          []string `form:"tags[]"`
	MinDifficulty *int     `form:"min_difficulty" binding:"omitempty,min=1,max=5"`
	MaxDifficulty *int     `form:"max_difficulty" binding:"omitempty,min=1,max=5"`
	ActiveOnly    bool     `form:"active_only"`
	Page          int      `form:"page" binding:"omitempty,min=1"`
	PageSize      int      `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// --- Session Requests ---

type StartSessionRequest struct {
	JobID         *string `json:"job_id,omitempty"`
	QuestionType  string  `json:"question_type" binding:"omitempty,is-question-type"`
	QuestionCount int     `json:"question_count" binding:"omitempty,min=1,max=20"`
}

type SubmitResponseRequest struct {
	QuestionID      string  `json:"question_id" binding:"required"`
	AnswerText      string  `json:"answer_text"`
	DurationSeconds float64 `json:"duration_seconds" binding:"omitempty,min=0"`
}

type SessionListRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=active completed expired"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// --- Responses ---

type QuestionResponse struct {
	ID         string    `json:"id"`
	Prompt     string    `json:"prompt"`
	Type       string    `json:"type"`
	Difficulty int       `json:"difficulty"`
	Tags       []string  `json:"tags"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuestionListResponse struct {
	Questions  []*QuestionResponse `json:"questions"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// StartSessionResponse returns the created session together with the
// questions picked for it. Questions are a suggestion; grading happens per
// submitted response.
type StartSessionResponse struct {
	Session   SessionResponse     `json:"session"`
	Questions []*QuestionResponse `json:"questions"`
}

type SessionResponse struct {
	ID            string               `json:"id"`
	CandidateID   string               `json:"candidate_id"`
	JobID         *string              `json:"job_id,omitempty"`
	Status        models.SessionStatus `json:"status"`
	StartedAt     time.Time            `json:"started_at"`
	CompletedAt   *time.Time           `json:"completed_at,omitempty"`
	ResponseCount int                  `json:"response_count"`
	Responses     []*ResponseDetail    `json:"responses,omitempty"`
}

type SessionListResponse struct {
	Sessions   []*SessionResponse `json:"sessions"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

type ResponseDetail struct {
	ID              string            `json:"id"`
	SessionID       string            `json:"session_id"`
	QuestionID      string            `json:"question_id"`
	AnswerText      string            `json:"answer_text,omitempty"`
	DurationSeconds float64           `json:"duration_seconds"`
	Question        *QuestionResponse `json:"question,omitempty"`
	Analysis        *AnalysisResponse `json:"analysis,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// AnalysisResponse is the persisted scoring result for one answer.
type AnalysisResponse struct {
	ID               string    `json:"id"`
	ResponseID       string    `json:"response_id"`
	OverallScore     int       `json:"overall_score"`
	Relevance        int       `json:"relevance"`
	Clarity          int       `json:"clarity"`
	Completeness     int       `json:"completeness"`
	Professionalism  int       `json:"professionalism"`
	WordCount        int       `json:"word_count"`
	SpeakingRateWpm  int       `json:"speaking_rate_wpm"`
	FillerWordCount  int       `json:"filler_word_count"`
	Strengths        []string  `json:"strengths"`
	Improvements     []string  `json:"improvements"`
	KeywordMatches   []string  `json:"keyword_matches"`
	DetailedFeedback string    `json:"detailed_feedback"`
	CreatedAt        time.Time `json:"created_at"`
}
