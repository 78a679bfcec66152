package handlers

import (
	"net/http"

	"talentiq_backend/internal/middleware"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/services"
	"talentiq_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/candidates/:profileId", h.GetCandidateProfile)
		profiles.GET("/recruiters/:profileId", h.GetRecruiterProfile)
	}

	candidateOwn := r.Group("/profiles/candidates")
	candidateOwn.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		candidateOwn.GET("/me", h.GetMyCandidateProfile)
		candidateOwn.PUT("/me", h.UpdateMyCandidateProfile)
	}

	recruiterOwn := r.Group("/profiles/recruiters")
	recruiterOwn.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleRecruiter))
	{
		recruiterOwn.GET("/me", h.GetMyRecruiterProfile)
		recruiterOwn.PUT("/me", h.UpdateMyRecruiterProfile)
	}

	search := r.Group("/profiles/candidates")
	search.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin))
	{
		search.GET("", h.SearchCandidates)
	}

	admin := r.Group("/admin/recruiters")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("/:profileId/verify", h.VerifyRecruiter)
	}
}

func (h *ProfileHandler) GetCandidateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetCandidateProfile(c.Param("profileId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMyCandidateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMyCandidateProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateMyCandidateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCandidateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateCandidateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SearchCandidates(c *gin.Context) {
	var req dto.CandidateSearchRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	results, err := h.profileService.SearchCandidates(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *ProfileHandler) GetRecruiterProfile(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	profile, err := h.profileService.GetRecruiterProfile(c.Param("profileId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMyRecruiterProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMyRecruiterProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateMyRecruiterProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecruiterProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateRecruiterProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) VerifyRecruiter(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.VerifyRecruiter(adminID, c.Param("profileId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recruiter verified"})
}
