package repositories

import (
	"errors"
	"time"

	"talentiq_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSessionNotFound   = errors.New("interview session not found")
	ErrResponseNotFound  = errors.New("interview response not found")
	ErrDuplicateResponse = errors.New("question already answered in this session")
	ErrAnalysisNotFound  = errors.New("response analysis not found")
)

type SessionRepository interface {
	// Session operations
	CreateSession(session *models.InterviewSession) error
	FindSessionByID(id string) (*models.InterviewSession, error)
	FindActiveSessionByCandidate(candidateID string) (*models.InterviewSession, error)
	FindSessionsByCandidate(candidateID string, criteria SessionCriteria) ([]models.InterviewSession, int64, error)
	UpdateSessionStatus(sessionID string, status models.SessionStatus, completedAt *time.Time) error

	// Response operations
	CreateResponse(response *models.InterviewResponse) error
	FindResponseByID(id string) (*models.InterviewResponse, error)
	FindResponsesBySession(sessionID string) ([]models.InterviewResponse, error)
	CountResponsesBySession(sessionID string) (int64, error)

	// Analysis operations
	CreateAnalysis(analysis *models.ResponseAnalysis) error
	FindAnalysisByResponseID(responseID string) (*models.ResponseAnalysis, error)
	GetSessionScoreAverages(sessionID string) (*SessionScoreAverages, error)

	// Worker support
	ExpireStaleSessions(cutoff time.Time) (int64, error)
}

type SessionRepositoryImpl struct {
	db *gorm.DB
}

type SessionCriteria struct {
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
}

// SessionScoreAverages holds per-dimension averages over all analyzed
// responses of one session.
type SessionScoreAverages struct {
	ResponseCount          int64
	AverageOverall         float64
	AverageRelevance       float64
	AverageClarity         float64
	AverageCompleteness    float64
	AverageProfessionalism float64
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Session operations

func (r *SessionRepositoryImpl) CreateSession(session *models.InterviewSession) error {
	return r.db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindSessionByID(id string) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.db.Preload("Responses").
		Preload("Responses.Question").
		Preload("Responses.Analysis").
		First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) FindActiveSessionByCandidate(candidateID string) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.db.Where("candidate_id = ? AND status = ?", candidateID, models.SessionStatusActive).
		Order("started_at DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) FindSessionsByCandidate(candidateID string, criteria SessionCriteria) ([]models.InterviewSession, int64, error) {
	var sessions []models.InterviewSession
	query := r.db.Model(&models.InterviewSession{}).Where("candidate_id = ?", candidateID)

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error

	return sessions, total, err
}

func (r *SessionRepositoryImpl) UpdateSessionStatus(sessionID string, status models.SessionStatus, completedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}

	result := r.db.Model(&models.InterviewSession{}).Where("id = ?", sessionID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Response operations

func (r *SessionRepositoryImpl) CreateResponse(response *models.InterviewResponse) error {
	// One response per question per session
	var existing models.InterviewResponse
	err := r.db.Where("session_id = ? AND question_id = ?", response.SessionID, response.QuestionID).
		First(&existing).Error
	if err == nil {
		return ErrDuplicateResponse
	}

	return r.db.Create(response).Error
}

func (r *SessionRepositoryImpl) FindResponseByID(id string) (*models.InterviewResponse, error) {
	var response models.InterviewResponse
	err := r.db.Preload("Question").Preload("Analysis").
		First(&response, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

func (r *SessionRepositoryImpl) FindResponsesBySession(sessionID string) ([]models.InterviewResponse, error) {
	var responses []models.InterviewResponse
	err := r.db.Where("session_id = ?", sessionID).
		Preload("Question").Preload("Analysis").
		Order("created_at ASC").
		Find(&responses).Error
	return responses, err
}

func (r *SessionRepositoryImpl) CountResponsesBySession(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.InterviewResponse{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

// Analysis operations

func (r *SessionRepositoryImpl) CreateAnalysis(analysis *models.ResponseAnalysis) error {
	return r.db.Create(analysis).Error
}

func (r *SessionRepositoryImpl) FindAnalysisByResponseID(responseID string) (*models.ResponseAnalysis, error) {
	var analysis models.ResponseAnalysis
	err := r.db.Where("response_id = ?", responseID).First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *SessionRepositoryImpl) GetSessionScoreAverages(sessionID string) (*SessionScoreAverages, error) {
	var averages SessionScoreAverages

	err := r.db.Model(&models.ResponseAnalysis{}).
		Select(`COUNT(*) as response_count,
			COALESCE(AVG(overall_score), 0) as average_overall,
			COALESCE(AVG(relevance), 0) as average_relevance,
			COALESCE(AVG(clarity), 0) as average_clarity,
			COALESCE(AVG(completeness), 0) as average_completeness,
			COALESCE(AVG(professionalism), 0) as average_professionalism`).
		Joins("JOIN interview_responses ON interview_responses.id = response_analyses.response_id").
		Where("interview_responses.session_id = ?", sessionID).
		Scan(&averages).Error

	if err != nil {
		return nil, err
	}
	return &averages, nil
}

// Worker support

func (r *SessionRepositoryImpl) ExpireStaleSessions(cutoff time.Time) (int64, error) {
	result := r.db.Model(&models.InterviewSession{}).
		Where("status = ? AND started_at < ?", models.SessionStatusActive, cutoff).
		Updates(map[string]interface{}{
			"status":     models.SessionStatusExpired,
			"updated_at": time.Now(),
		})

	return result.RowsAffected, result.Error
}
