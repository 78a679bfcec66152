package handlers

import (
	"net/http"

	"talentiq_backend/internal/middleware"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/services"
	"talentiq_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.GET("", h.SearchJobs)
		jobs.GET("/:jobId", h.GetJob)
	}

	recruiter := r.Group("/jobs")
	recruiter.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleRecruiter))
	{
		recruiter.POST("", h.CreateJob)
		recruiter.GET("/mine", h.ListMyJobs)
		recruiter.PUT("/:jobId", h.UpdateJob)
		recruiter.DELETE("/:jobId", h.DeleteJob)
		recruiter.POST("/:jobId/publish", h.PublishJob)
		recruiter.POST("/:jobId/close", h.CloseJob)
		recruiter.POST("/:jobId/archive", h.ArchiveJob)
	}
}

// SearchJobs godoc
// @Summary Search job postings
// @Description Full-text and criteria search over postings. Defaults to open postings.
// @Tags jobs
// @Accept json
// @Produce json
// @Param query query string false "Text search over title and description"
// @Param city query string false "City filter"
// @Param skills[] query []string false "Required skills (overlap)"
// @Param employment_type query string false "full_time, part_time, contract or internship"
// @Param status query string false "Posting status, defaults to open"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.JobListResponse
// @Failure 400 {object} apperrors.AppError "Invalid query parameters"
// @Router /jobs [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var req dto.JobSearchRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	results, err := h.jobService.SearchJobs(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetJob godoc
// @Summary Get one job posting
// @Description Returns a posting by ID. Drafts are only visible to their owners.
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} apperrors.AppError "Posting not found"
// @Router /jobs/{jobId} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Create a job posting
// @Description Creates a draft posting owned by the authenticated recruiter.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body dto.CreateJobRequest true "Posting fields"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} apperrors.AppError "Validation failed"
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ListMyJobs godoc
// @Summary List own postings
// @Description Returns the recruiter's postings in every status, with application counts.
// @Tags jobs
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.JobListResponse
// @Router /jobs/mine [get]
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	jobs, err := h.jobService.ListMyJobs(userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// UpdateJob godoc
// @Summary Update a draft posting
// @Description Edits a draft. Published postings cannot be edited.
// @Tags jobs
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param job body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} apperrors.AppError "Posting is not a draft"
// @Router /jobs/{jobId} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Param("jobId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete a draft posting
// @Tags jobs
// @Param jobId path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.AppError "Posting is not a draft"
// @Router /jobs/{jobId} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Param("jobId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Posting deleted"})
}

// PublishJob godoc
// @Summary Publish a draft posting
// @Tags jobs
// @Param jobId path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.AppError "Posting is not a draft"
// @Router /jobs/{jobId}/publish [post]
func (h *JobHandler) PublishJob(c *gin.Context) {
	h.transition(c, h.jobService.PublishJob, "Posting published")
}

// CloseJob godoc
// @Summary Close an open posting
// @Tags jobs
// @Param jobId path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.AppError "Posting is not open"
// @Router /jobs/{jobId}/close [post]
func (h *JobHandler) CloseJob(c *gin.Context) {
	h.transition(c, h.jobService.CloseJob, "Posting closed")
}

// ArchiveJob godoc
// @Summary Archive a closed posting
// @Tags jobs
// @Param jobId path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.AppError "Posting is not closed"
// @Router /jobs/{jobId}/archive [post]
func (h *JobHandler) ArchiveJob(c *gin.Context) {
	h.transition(c, h.jobService.ArchiveJob, "Posting archived")
}

func (h *JobHandler) transition(c *gin.Context, op func(jobID, requesterID string) error, message string) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := op(c.Param("jobId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
