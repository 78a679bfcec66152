package repositories

import (
	"errors"
	"time"

	"talentiq_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	UpdateStatus(jobID string, status models.JobStatus) error
	Delete(id string) error
	IncrementViews(jobID string) error

	FindByRecruiter(recruiterID string, limit, offset int) ([]models.Job, error)
	CountByRecruiter(recruiterID string) (int64, error)
	Search(criteria JobSearchCriteria) ([]models.Job, int64, error)

	// Worker support
	FindExpiredOpen(now time.Time) ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

type JobSearchCriteria struct {
	Query          string   `form:"query"`
	City           string   `form:"city"`
	Skills         []string `form:"skills[]"`
	EmploymentType string   `form:"employment_type"`
	MinSalary      *float64 `form:"min_salary"`
	MaxSalary      *float64 `form:"max_salary"`
	Status         string   `form:"status"`
	Page           int      `form:"page" binding:"min=1"`
	PageSize       int      `form:"page_size" binding:"min=1,max=100"`
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":           job.Title,
		"description":     job.Description,
		"city":            job.City,
		"employment_type": job.EmploymentType,
		"salary_min":      job.SalaryMin,
		"salary_max":      job.SalaryMax,
		"experience_min":  job.ExperienceMin,
		"skills":          job.Skills,
		"deadline":        job.Deadline,
		"updated_at":      time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) IncrementViews(jobID string) error {
	return r.db.Model(&models.Job{}).Where("id = ?", jobID).
		Update("views", gorm.Expr("views + ?", 1)).Error
}

func (r *JobRepositoryImpl) FindByRecruiter(recruiterID string, limit, offset int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountByRecruiter(recruiterID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("recruiter_id = ?", recruiterID).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) Search(criteria JobSearchCriteria) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := r.db.Model(&models.Job{})

	// Public search only sees open postings unless a status is requested
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	} else {
		query = query.Where("status = ?", models.JobStatusOpen)
	}

	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", search, search)
	}

	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}

	if criteria.EmploymentType != "" {
		query = query.Where("employment_type = ?", criteria.EmploymentType)
	}

	if criteria.MinSalary != nil {
		query = query.Where("salary_max >= ?", *criteria.MinSalary)
	}

	if criteria.MaxSalary != nil {
		query = query.Where("salary_min <= ?", *criteria.MaxSalary)
	}

	// text[] overlap: any of the requested skills
	if len(criteria.Skills) > 0 {
		query = query.Where("skills && ?", pq.Array(criteria.Skills))
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&jobs).Error

	return jobs, total, err
}

func (r *JobRepositoryImpl) FindExpiredOpen(now time.Time) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("status = ? AND deadline IS NOT NULL AND deadline < ?", models.JobStatusOpen, now).
		Find(&jobs).Error
	return jobs, err
}
