package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type InterviewQuestion struct {
	BaseModel
	Prompt     string         `gorm:"not null"`
	Type       QuestionType   `gorm:"type:varchar(20);not null;index"`
	Difficulty int            `gorm:"default:1"` // 1 easy .. 5 hard
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags" swaggerignore:"true"`
	IsActive   bool           `gorm:"default:true"`
}

type InterviewSession struct {
	BaseModel
	CandidateID string        `gorm:"not null;index"`
	JobID       *string       `gorm:"index"` // optional link to a posting
	Status      SessionStatus `gorm:"type:varchar(20);default:'active';index"`
	StartedAt   time.Time     `gorm:"default:now()"`
	CompletedAt *time.Time

	// Relations
	Responses []InterviewResponse `gorm:"foreignKey:SessionID"`
}

type InterviewResponse struct {
	BaseModel
	SessionID       string  `gorm:"not null;index;uniqueIndex:idx_session_question"`
	QuestionID      string  `gorm:"not null;index;uniqueIndex:idx_session_question"`
	AnswerText      string
	DurationSeconds float64

	// Relations
	Question *InterviewQuestion `gorm:"foreignKey:QuestionID"`
	Analysis *ResponseAnalysis  `gorm:"foreignKey:ResponseID"`
}

// ResponseAnalysis persists one scoring pass over a response. Narrative
// lists live in text[] columns, the full result additionally as jsonb for
// clients that want it verbatim.
type ResponseAnalysis struct {
	BaseModel
	ResponseID       string `gorm:"not null;uniqueIndex"`
	OverallScore     int
	Relevance        int
	Clarity          int
	Completeness     int
	Professionalism  int
	WordCount        int
	SpeakingRateWpm  int
	FillerWordCount  int
	Strengths        pq.StringArray `gorm:"type:text[]" json:"strengths" swaggerignore:"true"`
	Improvements     pq.StringArray `gorm:"type:text[]" json:"improvements" swaggerignore:"true"`
	KeywordMatches   pq.StringArray `gorm:"type:text[]" json:"keyword_matches" swaggerignore:"true"`
	DetailedFeedback string
	Payload          datatypes.JSON `gorm:"type:jsonb"` // full result as returned by the scorer
}

// SessionSummary aggregates a completed session. Computed, not persisted.
type SessionSummary struct {
	SessionID              string  `json:"session_id"`
	ResponseCount          int     `json:"response_count"`
	AverageOverall         float64 `json:"average_overall"`
	AverageRelevance       float64 `json:"average_relevance"`
	AverageClarity         float64 `json:"average_clarity"`
	AverageCompleteness    float64 `json:"average_completeness"`
	AverageProfessionalism float64 `json:"average_professionalism"`
	StrongestDimension     string  `json:"strongest_dimension"`
	WeakestDimension       string  `json:"weakest_dimension"`
}
