package repositories

import (
	"errors"
	"time"

	"talentiq_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("candidate already applied to this job")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error)
	UpdateStatus(applicationID string, status models.ApplicationStatus, decidedAt *time.Time) error
	Delete(id string) error

	ListByJob(jobID string, criteria ApplicationCriteria) ([]models.Application, int64, error)
	ListByCandidate(candidateID string, criteria ApplicationCriteria) ([]models.Application, int64, error)
	CountByJob(jobID string) (int64, error)
	CountByJobAndStatus(jobID string, status models.ApplicationStatus) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

type ApplicationCriteria struct {
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	// One application per candidate per job
	var existing models.Application
	err := r.db.Where("job_id = ? AND candidate_id = ?", application.JobID, application.CandidateID).
		First(&existing).Error
	if err == nil {
		return ErrApplicationExists
	}

	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Candidate").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	var application models.Application
	err := r.db.Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(applicationID string, status models.ApplicationStatus, decidedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if decidedAt != nil {
		updates["decided_at"] = decidedAt
	}

	result := r.db.Model(&models.Application{}).Where("id = ?", applicationID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Application{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string, criteria ApplicationCriteria) ([]models.Application, int64, error) {
	var applications []models.Application
	query := r.db.Model(&models.Application{}).Where("job_id = ?", jobID)

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Preload("Candidate").Preload("Candidate.CandidateProfile").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&applications).Error

	return applications, total, err
}

func (r *ApplicationRepositoryImpl) ListByCandidate(candidateID string, criteria ApplicationCriteria) ([]models.Application, int64, error) {
	var applications []models.Application
	query := r.db.Model(&models.Application{}).Where("candidate_id = ?", candidateID)

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Preload("Job").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&applications).Error

	return applications, total, err
}

func (r *ApplicationRepositoryImpl) CountByJob(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByJobAndStatus(jobID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND status = ?", jobID, status).
		Count(&count).Error
	return count, err
}
