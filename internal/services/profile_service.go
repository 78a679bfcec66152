package services

import (
	"github.com/lib/pq"

	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"
)

type ProfileService interface {
	// Candidate profiles
	GetCandidateProfile(profileID, requesterID string) (*dto.CandidateProfileResponse, error)
	GetMyCandidateProfile(userID string) (*dto.CandidateProfileResponse, error)
	UpdateCandidateProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error)
	SearchCandidates(req *dto.CandidateSearchRequest) (*dto.CandidateListResponse, error)

	// Recruiter profiles
	GetRecruiterProfile(profileID string) (*dto.RecruiterProfileResponse, error)
	GetMyRecruiterProfile(userID string) (*dto.RecruiterProfileResponse, error)
	UpdateRecruiterProfile(userID string, req *dto.UpdateRecruiterProfileRequest) (*dto.RecruiterProfileResponse, error)
	VerifyRecruiter(adminID, profileID string) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// --- Candidate profiles ---

// GetCandidateProfile returns a candidate profile by its ID. Private
// profiles are only visible to their owner; foreign views bump the counter.
func (s *ProfileServiceImpl) GetCandidateProfile(profileID, requesterID string) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateProfileByID(profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !profile.IsPublic && profile.UserID != requesterID {
		return nil, apperrors.ErrProfileNotPublic
	}

	if profile.UserID != requesterID {
		go s.profileRepo.IncrementCandidateProfileViews(profileID)
	}

	return buildCandidateProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetMyCandidateProfile(userID string) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildCandidateProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateCandidateProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Summary != nil {
		profile.Summary = *req.Summary
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Skills != nil {
		profile.Skills = pq.StringArray(req.Skills)
	}
	if req.Languages != nil {
		profile.Languages = pq.StringArray(req.Languages)
	}
	if req.DesiredRate != nil {
		profile.DesiredRate = *req.DesiredRate
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}

	if err := s.profileRepo.UpdateCandidateProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildCandidateProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) SearchCandidates(req *dto.CandidateSearchRequest) (*dto.CandidateListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	criteria := repositories.CandidateSearchCriteria{
		Query:         req.Query,
		City:          req.City,
		Skills:        req.Skills,
		MinExperience: req.MinExperience,
		MaxExperience: req.MaxExperience,
		MaxRate:       req.MaxRate,
		Page:          page,
		PageSize:      pageSize,
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
	}

	profiles, total, err := s.profileRepo.SearchCandidateProfiles(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	candidates := make([]*dto.CandidateProfileResponse, 0, len(profiles))
	for i := range profiles {
		candidates = append(candidates, buildCandidateProfileResponse(&profiles[i]))
	}

	return &dto.CandidateListResponse{
		Candidates: candidates,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// --- Recruiter profiles ---

func (s *ProfileServiceImpl) GetRecruiterProfile(profileID string) (*dto.RecruiterProfileResponse, error) {
	profile, err := s.profileRepo.FindRecruiterProfileByID(profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildRecruiterProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetMyRecruiterProfile(userID string) (*dto.RecruiterProfileResponse, error) {
	profile, err := s.profileRepo.FindRecruiterProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildRecruiterProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateRecruiterProfile(userID string, req *dto.UpdateRecruiterProfileRequest) (*dto.RecruiterProfileResponse, error) {
	profile, err := s.profileRepo.FindRecruiterProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.ContactPerson != nil {
		profile.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}

	if err := s.profileRepo.UpdateRecruiterProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildRecruiterProfileResponse(profile), nil
}

// VerifyRecruiter marks a recruiter profile as verified. Admin only.
func (s *ProfileServiceImpl) VerifyRecruiter(adminID, profileID string) error {
	admin, err := s.userRepo.FindByID(adminID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if admin.Role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.profileRepo.VerifyRecruiterProfile(profileID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helper functions ---

func buildCandidateProfileResponse(profile *models.CandidateProfile) *dto.CandidateProfileResponse {
	return &dto.CandidateProfileResponse{
		ID:              profile.ID,
		UserID:          profile.UserID,
		FullName:        profile.FullName,
		Headline:        profile.Headline,
		Summary:         profile.Summary,
		ExperienceYears: profile.ExperienceYears,
		City:            profile.City,
		Skills:          []string(profile.Skills),
		Languages:       []string(profile.Languages),
		DesiredRate:     profile.DesiredRate,
		ProfileViews:    profile.ProfileViews,
		IsPublic:        profile.IsPublic,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

func buildRecruiterProfileResponse(profile *models.RecruiterProfile) *dto.RecruiterProfileResponse {
	return &dto.RecruiterProfileResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		CompanyName:   profile.CompanyName,
		ContactPerson: profile.ContactPerson,
		Phone:         profile.Phone,
		Website:       profile.Website,
		City:          profile.City,
		Description:   profile.Description,
		IsVerified:    profile.IsVerified,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}
