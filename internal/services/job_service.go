package services

import (
	"time"

	"github.com/lib/pq"

	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(jobID, requesterID string) (*dto.JobResponse, error)
	UpdateJob(jobID, requesterID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	PublishJob(jobID, requesterID string) error
	CloseJob(jobID, requesterID string) error
	ArchiveJob(jobID, requesterID string) error
	DeleteJob(jobID, requesterID string) error
	SearchJobs(req *dto.JobSearchRequest) (*dto.JobListResponse, error)
	ListMyJobs(recruiterID string, page, pageSize int) (*dto.JobListResponse, error)

	// Worker support
	CloseExpiredJobs() (int, error)
}

type JobServiceImpl struct {
	jobRepo          repositories.JobRepository
	userRepo         repositories.UserRepository
	applicationRepo  repositories.ApplicationRepository
	notificationRepo repositories.NotificationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	applicationRepo repositories.ApplicationRepository,
	notificationRepo repositories.NotificationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		applicationRepo:  applicationRepo,
		notificationRepo: notificationRepo,
	}
}

// Job operations

// CreateJob creates a draft posting owned by the recruiter.
func (s *JobServiceImpl) CreateJob(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	recruiter, err := s.userRepo.FindByID(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if recruiter.Role != models.UserRoleRecruiter {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.SalaryMax > 0 && req.SalaryMax < req.SalaryMin {
		return nil, apperrors.NewBadRequestError("maximum salary cannot be less than minimum salary")
	}
	if req.Deadline != nil && req.Deadline.Before(time.Now()) {
		return nil, apperrors.NewBadRequestError("deadline cannot be in the past")
	}

	job := &models.Job{
		RecruiterID:    recruiterID,
		Title:          req.Title,
		Description:    req.Description,
		City:           req.City,
		EmploymentType: req.EmploymentType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		ExperienceMin:  req.ExperienceMin,
		Skills:         pq.StringArray(req.Skills),
		Status:         models.JobStatusDraft,
		Deadline:       req.Deadline,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildJobResponse(job), nil
}

// GetJob returns a posting. Drafts and archived postings are only visible
// to their owners; foreign views bump the counter.
func (s *JobServiceImpl) GetJob(jobID, requesterID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	isOwner := job.RecruiterID == requesterID
	if !isOwner && (job.Status == models.JobStatusDraft || job.Status == models.JobStatusArchived) {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	if !isOwner {
		go s.jobRepo.IncrementViews(jobID)
	}

	response := buildJobResponse(job)
	if isOwner {
		if count, err := s.applicationRepo.CountByJob(jobID); err == nil {
			response.Applications = count
		}
	}
	return response, nil
}

// UpdateJob edits a draft. Published postings are immutable; close and
// repost instead.
func (s *JobServiceImpl) UpdateJob(jobID, requesterID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
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
	if job.Status != models.JobStatusDraft {
		return nil, apperrors.ErrInvalidJobStatus
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.City != nil {
		job.City = *req.City
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.ExperienceMin != nil {
		job.ExperienceMin = *req.ExperienceMin
	}
	if req.Skills != nil {
		job.Skills = pq.StringArray(req.Skills)
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if job.SalaryMax > 0 && job.SalaryMax < job.SalaryMin {
		return nil, apperrors.NewBadRequestError("maximum salary cannot be less than minimum salary")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildJobResponse(job), nil
}

// PublishJob moves a draft to open.
func (s *JobServiceImpl) PublishJob(jobID, requesterID string) error {
	return s.transitionJob(jobID, requesterID, models.JobStatusDraft, models.JobStatusOpen)
}

// CloseJob moves an open posting to closed.
func (s *JobServiceImpl) CloseJob(jobID, requesterID string) error {
	return s.transitionJob(jobID, requesterID, models.JobStatusOpen, models.JobStatusClosed)
}

// ArchiveJob moves a closed posting to archived.
func (s *JobServiceImpl) ArchiveJob(jobID, requesterID string) error {
	return s.transitionJob(jobID, requesterID, models.JobStatusClosed, models.JobStatusArchived)
}

// DeleteJob removes a draft. Postings that ever went live are closed and
// archived, not deleted.
func (s *JobServiceImpl) DeleteJob(jobID, requesterID string) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if job.RecruiterID != requesterID {
		return apperrors.ErrInsufficientPermissions
	}
	if job.Status != models.JobStatusDraft {
		return apperrors.ErrInvalidJobStatus
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// SearchJobs is the public posting search. Defaults to open postings.
func (s *JobServiceImpl) SearchJobs(req *dto.JobSearchRequest) (*dto.JobListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	criteria := repositories.JobSearchCriteria{
		Query:          req.Query,
		City:           req.City,
		Skills:         req.Skills,
		EmploymentType: req.EmploymentType,
		MinSalary:      req.MinSalary,
		MaxSalary:      req.MaxSalary,
		Status:         req.Status,
		Page:           page,
		PageSize:       pageSize,
	}

	jobs, total, err := s.jobRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, buildJobResponse(&jobs[i]))
	}

	return &dto.JobListResponse{
		Jobs:       responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// ListMyJobs returns the recruiter's own postings, drafts included, with
// application counts.
func (s *JobServiceImpl) ListMyJobs(recruiterID string, page, pageSize int) (*dto.JobListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	total, err := s.jobRepo.CountByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.jobRepo.FindByRecruiter(recruiterID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		response := buildJobResponse(&jobs[i])
		if count, err := s.applicationRepo.CountByJob(jobs[i].ID); err == nil {
			response.Applications = count
		}
		responses = append(responses, response)
	}

	return &dto.JobListResponse{
		Jobs:       responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// CloseExpiredJobs closes every open posting whose deadline has passed and
// notifies the owner. Called by the auto-close worker.
func (s *JobServiceImpl) CloseExpiredJobs() (int, error) {
	jobs, err := s.jobRepo.FindExpiredOpen(time.Now())
	if err != nil {
		return 0, err
	}

	closed := 0
	for i := range jobs {
		job := &jobs[i]
		if err := s.jobRepo.UpdateStatus(job.ID, models.JobStatusClosed); err != nil {
			logger.Error("failed to auto-close job", "job_id", job.ID, "error", err)
			continue
		}
		closed++

		if err := s.notificationRepo.CreateJobClosedNotification(job.RecruiterID, job.ID, job.Title); err != nil {
			logger.Warn("failed to create job closed notification", "job_id", job.ID, "error", err)
		}
	}

	return closed, nil
}

// --- Helper functions ---

// transitionJob applies an owner-gated single-step status change.
func (s *JobServiceImpl) transitionJob(jobID, requesterID string, from, to models.JobStatus) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if job.RecruiterID != requesterID {
		return apperrors.ErrInsufficientPermissions
	}
	if job.Status != from {
		return apperrors.ErrInvalidJobStatus
	}

	if err := s.jobRepo.UpdateStatus(jobID, to); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildJobResponse(job *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:             job.ID,
		RecruiterID:    job.RecruiterID,
		Title:          job.Title,
		Description:    job.Description,
		City:           job.City,
		EmploymentType: job.EmploymentType,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		ExperienceMin:  job.ExperienceMin,
		Skills:         []string(job.Skills),
		Status:         job.Status,
		Deadline:       job.Deadline,
		Views:          job.Views,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}
