package repositories

import (
	"errors"
	"fmt"
	"time"

	"talentiq_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	// CandidateProfile operations
	CreateCandidateProfile(profile *models.CandidateProfile) error
	FindCandidateProfileByID(id string) (*models.CandidateProfile, error)
	FindCandidateProfileByUserID(userID string) (*models.CandidateProfile, error)
	UpdateCandidateProfile(profile *models.CandidateProfile) error
	IncrementCandidateProfileViews(profileID string) error
	DeleteCandidateProfile(id string) error
	SearchCandidateProfiles(criteria CandidateSearchCriteria) ([]models.CandidateProfile, int64, error)
	FindPublicCandidateProfiles(limit int) ([]models.CandidateProfile, error)

	// RecruiterProfile operations
	CreateRecruiterProfile(profile *models.RecruiterProfile) error
	FindRecruiterProfileByID(id string) (*models.RecruiterProfile, error)
	FindRecruiterProfileByUserID(userID string) (*models.RecruiterProfile, error)
	UpdateRecruiterProfile(profile *models.RecruiterProfile) error
	VerifyRecruiterProfile(recruiterID string) error
	DeleteRecruiterProfile(id string) error

	// Skill operations
	UpdateCandidateSkills(profileID string, skills []string) error
	FindCandidatesBySkills(skills []string, limit int) ([]models.CandidateProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

type CandidateSearchCriteria struct {
	Query         string   `form:"query"`
	City          string   `form:"city"`
	Skills        []string `form:"skills[]"`
	MinExperience *int     `form:"min_experience"`
	MaxExperience *int     `form:"max_experience"`
	MaxRate       *float64 `form:"max_rate"`
	Page          int      `form:"page" binding:"min=1"`
	PageSize      int      `form:"page_size" binding:"min=1,max=100"`
	SortBy        string   `form:"sort_by"`
	SortOrder     string   `form:"sort_order"`
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// CandidateProfile operations

func (r *ProfileRepositoryImpl) CreateCandidateProfile(profile *models.CandidateProfile) error {
	// Check if profile already exists for this user
	var existing models.CandidateProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}

	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCandidateProfileByID(id string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCandidateProfileByUserID(userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCandidateProfile(profile *models.CandidateProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"full_name":        profile.FullName,
		"headline":         profile.Headline,
		"summary":          profile.Summary,
		"experience_years": profile.ExperienceYears,
		"city":             profile.City,
		"skills":           profile.Skills,
		"languages":        profile.Languages,
		"desired_rate":     profile.DesiredRate,
		"is_public":        profile.IsPublic,
		"updated_at":       time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) IncrementCandidateProfileViews(profileID string) error {
	return r.db.Model(&models.CandidateProfile{}).Where("id = ?", profileID).
		Update("profile_views", gorm.Expr("profile_views + ?", 1)).Error
}

func (r *ProfileRepositoryImpl) DeleteCandidateProfile(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.CandidateProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SearchCandidateProfiles(criteria CandidateSearchCriteria) ([]models.CandidateProfile, int64, error) {
	var profiles []models.CandidateProfile
	query := r.db.Model(&models.CandidateProfile{})

	// Only public profiles are searchable
	query = query.Where("is_public = ?", true)

	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("full_name ILIKE ? OR headline ILIKE ? OR summary ILIKE ?", search, search, search)
	}

	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}

	if criteria.MinExperience != nil {
		query = query.Where("experience_years >= ?", *criteria.MinExperience)
	}

	if criteria.MaxExperience != nil {
		query = query.Where("experience_years <= ?", *criteria.MaxExperience)
	}

	if criteria.MaxRate != nil {
		query = query.Where("desired_rate <= ?", *criteria.MaxRate)
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

	// Apply sorting
	sortField := getCandidateSortField(criteria.SortBy)
	sortOrder := getSortOrder(criteria.SortOrder)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	// Apply pagination
	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Limit(limit).Offset(offset).Find(&profiles).Error

	return profiles, total, err
}

func (r *ProfileRepositoryImpl) FindPublicCandidateProfiles(limit int) ([]models.CandidateProfile, error) {
	var profiles []models.CandidateProfile
	err := r.db.Where("is_public = ?", true).
		Order("profile_views DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

// RecruiterProfile operations

func (r *ProfileRepositoryImpl) CreateRecruiterProfile(profile *models.RecruiterProfile) error {
	var existing models.RecruiterProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindRecruiterProfileByID(id string) (*models.RecruiterProfile, error) {
	var profile models.RecruiterProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindRecruiterProfileByUserID(userID string) (*models.RecruiterProfile, error) {
	var profile models.RecruiterProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateRecruiterProfile(profile *models.RecruiterProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"company_name":   profile.CompanyName,
		"contact_person": profile.ContactPerson,
		"phone":          profile.Phone,
		"website":        profile.Website,
		"city":           profile.City,
		"description":    profile.Description,
		"updated_at":     time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) VerifyRecruiterProfile(recruiterID string) error {
	result := r.db.Model(&models.RecruiterProfile{}).Where("id = ?", recruiterID).Updates(map[string]interface{}{
		"is_verified": true,
		"updated_at":  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) DeleteRecruiterProfile(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.RecruiterProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Skill operations

func (r *ProfileRepositoryImpl) UpdateCandidateSkills(profileID string, skills []string) error {
	result := r.db.Model(&models.CandidateProfile{}).Where("id = ?", profileID).
		Update("skills", pq.StringArray(skills))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindCandidatesBySkills(skills []string, limit int) ([]models.CandidateProfile, error) {
	var profiles []models.CandidateProfile
	err := r.db.Where("is_public = ?", true).
		Where("skills && ?", pq.Array(skills)).
		Order("experience_years DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

// Helper functions

func getCandidateSortField(sortBy string) string {
	switch sortBy {
	case "experience":
		return "experience_years"
	case "rate":
		return "desired_rate"
	case "views":
		return "profile_views"
	case "created_at":
		return "created_at"
	default:
		return "experience_years"
	}
}

func getSortOrder(sortOrder string) string {
	if sortOrder == "asc" {
		return "ASC"
	}
	return "DESC"
}
