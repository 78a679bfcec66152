package repositories

import (
	"errors"
	"time"

	"talentiq_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository interface {
	Create(question *models.InterviewQuestion) error
	CreateBatch(questions []*models.InterviewQuestion) error
	FindByID(id string) (*models.InterviewQuestion, error)
	Update(question *models.InterviewQuestion) error
	SetActive(questionID string, active bool) error
	Delete(id string) error

	List(criteria QuestionCriteria) ([]models.InterviewQuestion, int64, error)
	FindActiveByType(questionType models.QuestionType, limit int) ([]models.InterviewQuestion, error)
	PickRandomActive(questionType models.QuestionType, count int) ([]models.InterviewQuestion, error)
	CountActive() (int64, error)
}

type QuestionRepositoryImpl struct {
	db *gorm.DB
}

type QuestionCriteria struct {
	Type          string   `form:"type"`
	Tags          []string `form:"tags[]"`
	MinDifficulty *int     `form:"min_difficulty"`
	MaxDifficulty *int     `form:"max_difficulty"`
	ActiveOnly    bool     `form:"active_only"`
	Page          int      `form:"page" binding:"min=1"`
	PageSize      int      `form:"page_size" binding:"min=1,max=100"`
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &QuestionRepositoryImpl{db: db}
}

func (r *QuestionRepositoryImpl) Create(question *models.InterviewQuestion) error {
	return r.db.Create(question).Error
}

func (r *QuestionRepositoryImpl) CreateBatch(questions []*models.InterviewQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.CreateInBatches(questions, 100).Error
}

func (r *QuestionRepositoryImpl) FindByID(id string) (*models.InterviewQuestion, error) {
	var question models.InterviewQuestion
	err := r.db.First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepositoryImpl) Update(question *models.InterviewQuestion) error {
	result := r.db.Model(question).Updates(map[string]interface{}{
		"prompt":     question.Prompt,
		"type":       question.Type,
		"difficulty": question.Difficulty,
		"tags":       question.Tags,
		"is_active":  question.IsActive,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepositoryImpl) SetActive(questionID string, active bool) error {
	result := r.db.Model(&models.InterviewQuestion{}).Where("id = ?", questionID).Updates(map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.InterviewQuestion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepositoryImpl) List(criteria QuestionCriteria) ([]models.InterviewQuestion, int64, error) {
	var questions []models.InterviewQuestion
	query := r.db.Model(&models.InterviewQuestion{})

	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}

	if criteria.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if criteria.MinDifficulty != nil {
		query = query.Where("difficulty >= ?", *criteria.MinDifficulty)
	}

	if criteria.MaxDifficulty != nil {
		query = query.Where("difficulty <= ?", *criteria.MaxDifficulty)
	}

	if len(criteria.Tags) > 0 {
		query = query.Where("tags && ?", pq.Array(criteria.Tags))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&questions).Error

	return questions, total, err
}

func (r *QuestionRepositoryImpl) FindActiveByType(questionType models.QuestionType, limit int) ([]models.InterviewQuestion, error) {
	var questions []models.InterviewQuestion
	err := r.db.Where("type = ? AND is_active = ?", questionType, true).
		Order("difficulty ASC").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepositoryImpl) PickRandomActive(questionType models.QuestionType, count int) ([]models.InterviewQuestion, error) {
	var questions []models.InterviewQuestion
	query := r.db.Where("is_active = ?", true)
	if questionType != "" {
		query = query.Where("type = ?", questionType)
	}

	err := query.Order("RANDOM()").Limit(count).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.InterviewQuestion{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
