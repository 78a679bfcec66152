package services

import (
	"fmt"
	"time"

	"talentiq_backend/internal/email"
	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(jobID, candidateID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	GetApplication(applicationID, requesterID string) (*dto.ApplicationResponse, error)
	UpdateStatus(applicationID, requesterID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	Withdraw(applicationID, candidateID string) error
	ListJobApplications(jobID, requesterID string, req *dto.ApplicationListRequest) (*dto.ApplicationListResponse, error)
	ListMyApplications(candidateID string, req *dto.ApplicationListRequest) (*dto.ApplicationListResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
	}
}

// Application operations

// Apply submits a candidate's application to an open posting.
func (s *ApplicationServiceImpl) Apply(jobID, candidateID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	candidate, err := s.userRepo.FindByID(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if candidate.Role != models.UserRoleCandidate {
		return nil, apperrors.ErrInsufficientPermissions
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrInvalidJobStatus
	}
	if job.Deadline != nil && job.Deadline.Before(time.Now()) {
		return nil, apperrors.ErrJobDeadlinePassed
	}

	application := &models.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusSubmitted,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	candidateName := candidate.Email
	if profile, err := s.profileRepo.FindCandidateProfileByUserID(candidateID); err == nil && profile.FullName != "" {
		candidateName = profile.FullName
	}
	if err := s.notificationRepo.CreateNewApplicationNotification(job.RecruiterID, job.ID, application.ID, candidateName); err != nil {
		logger.Warn("failed to create new application notification", "application_id", application.ID, "error", err)
	}

	application.Job = job
	application.Candidate = candidate
	return buildApplicationResponse(application), nil
}

// GetApplication returns one application. Visible to the candidate who
// submitted it and to the posting's owner, nobody else.
func (s *ApplicationServiceImpl) GetApplication(applicationID, requesterID string) (*dto.ApplicationResponse, error) {
	application, err := s.findWithJob(applicationID)
	if err != nil {
		return nil, err
	}

	if application.CandidateID != requesterID && application.Job.RecruiterID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	return buildApplicationResponse(application), nil
}

// UpdateStatus moves an application along its pipeline. Only the posting's
// owner can decide; illegal jumps are rejected.
func (s *ApplicationServiceImpl) UpdateStatus(applicationID, requesterID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	application, err := s.findWithJob(applicationID)
	if err != nil {
		return nil, err
	}

	if application.Job.RecruiterID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if !application.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	var decidedAt *time.Time
	if req.Status == models.ApplicationStatusAccepted || req.Status == models.ApplicationStatusRejected {
		now := time.Now()
		decidedAt = &now
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, req.Status, decidedAt); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	application.Status = req.Status
	application.DecidedAt = decidedAt

	if err := s.notificationRepo.CreateApplicationStatusNotification(application.CandidateID, application.Job.Title, req.Status); err != nil {
		logger.Warn("failed to create status notification", "application_id", applicationID, "error", err)
	}
	if decidedAt != nil {
		s.sendDecisionEmail(application)
	}

	return buildApplicationResponse(application), nil
}

// Withdraw lets a candidate retract an application the recruiter has not
// started reviewing yet.
func (s *ApplicationServiceImpl) Withdraw(applicationID, candidateID string) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if application.CandidateID != candidateID {
		return apperrors.ErrInsufficientPermissions
	}
	if application.Status != models.ApplicationStatusSubmitted {
		return apperrors.ErrInvalidOperation("application", "only submitted applications can be withdrawn")
	}

	if err := s.applicationRepo.Delete(applicationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListJobApplications returns the applications for one posting, owner only.
func (s *ApplicationServiceImpl) ListJobApplications(jobID, requesterID string, req *dto.ApplicationListRequest) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.RecruiterID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	page, pageSize := normalizePagination(req.Page, req.PageSize)
	applications, total, err := s.applicationRepo.ListByJob(jobID, repositories.ApplicationCriteria{
		Status:   req.Status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildApplicationListResponse(applications, total, page, pageSize), nil
}

// ListMyApplications returns the candidate's own applications.
func (s *ApplicationServiceImpl) ListMyApplications(candidateID string, req *dto.ApplicationListRequest) (*dto.ApplicationListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)
	applications, total, err := s.applicationRepo.ListByCandidate(candidateID, repositories.ApplicationCriteria{
		Status:   req.Status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildApplicationListResponse(applications, total, page, pageSize), nil
}

// --- Helper functions ---

// findWithJob loads an application and guarantees its posting is attached.
func (s *ApplicationServiceImpl) findWithJob(applicationID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Job == nil {
		job, err := s.jobRepo.FindByID(application.JobID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		application.Job = job
	}

	return application, nil
}

func (s *ApplicationServiceImpl) sendDecisionEmail(application *models.Application) {
	if s.emailProvider == nil || application.Candidate == nil {
		return
	}

	recipient := application.Candidate.Email
	jobTitle := application.Job.Title
	status := application.Status

	go func() {
		subject := fmt.Sprintf("Update on your application for %s", jobTitle)
		body := fmt.Sprintf("Your application for %s has been %s.", jobTitle, status)
		if status == models.ApplicationStatusAccepted {
			body = fmt.Sprintf("Congratulations! Your application for %s has been accepted. The recruiter will contact you with next steps.", jobTitle)
		}

		msg := &email.Email{
			To:      []string{recipient},
			Subject: subject,
			Body:    body,
		}
		if err := s.emailProvider.Send(msg); err != nil {
			logger.Warn("failed to send decision email", "to", recipient, "error", err)
		}
	}()
}

func buildApplicationResponse(application *models.Application) *dto.ApplicationResponse {
	response := &dto.ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		CandidateID: application.CandidateID,
		CoverLetter: application.CoverLetter,
		Status:      application.Status,
		DecidedAt:   application.DecidedAt,
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}

	if application.Job != nil {
		response.Job = buildJobResponse(application.Job)
	}
	if application.Candidate != nil && application.Candidate.CandidateProfile != nil {
		profile := application.Candidate.CandidateProfile
		response.Candidate = &dto.ApplicantSummary{
			UserID:          profile.UserID,
			FullName:        profile.FullName,
			Headline:        profile.Headline,
			City:            profile.City,
			ExperienceYears: profile.ExperienceYears,
			Skills:          []string(profile.Skills),
		}
	}

	return response
}

func buildApplicationListResponse(applications []models.Application, total int64, page, pageSize int) *dto.ApplicationListResponse {
	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, buildApplicationResponse(&applications[i]))
	}

	return &dto.ApplicationListResponse{
		Applications: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   calculateTotalPages(total, pageSize),
	}
}
