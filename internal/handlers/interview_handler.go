package handlers

import (
	"net/http"

	"talentiq_backend/internal/middleware"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/services"
	"talentiq_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	sessions := r.Group("/interview/sessions")
	sessions.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/mine", h.ListMySessions)
		sessions.POST("/:sessionId/responses", h.SubmitResponse)
		sessions.POST("/:sessionId/complete", h.CompleteSession)
	}

	sessionRead := r.Group("/interview/sessions")
	sessionRead.Use(middleware.AuthMiddleware())
	{
		sessionRead.GET("/:sessionId", h.GetSession)
	}

	responses := r.Group("/interview/responses")
	responses.Use(middleware.AuthMiddleware())
	{
		responses.GET("/:responseId/analysis", h.GetAnalysis)
	}

	admin := r.Group("/admin/interview/questions")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.CreateQuestion)
		admin.GET("", h.ListQuestions)
		admin.PUT("/:questionId", h.UpdateQuestion)
		admin.PUT("/:questionId/active", h.SetQuestionActive)
		admin.DELETE("/:questionId", h.DeleteQuestion)
	}
}

// Session endpoints

func (h *InterviewHandler) StartSession(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.StartSessionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	session, err := h.interviewService.StartSession(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *InterviewHandler) SubmitResponse(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitResponseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	detail, err := h.interviewService.SubmitResponse(c.Request.Context(), c.Param("sessionId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (h *InterviewHandler) CompleteSession(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	summary, err := h.interviewService.CompleteSession(c.Param("sessionId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *InterviewHandler) GetSession(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	session, err := h.interviewService.GetSession(c.Param("sessionId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *InterviewHandler) ListMySessions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SessionListRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	sessions, err := h.interviewService.ListMySessions(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func (h *InterviewHandler) GetAnalysis(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.interviewService.GetAnalysis(c.Request.Context(), c.Param("responseId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Question bank endpoints

func (h *InterviewHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	question, err := h.interviewService.CreateQuestion(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *InterviewHandler) ListQuestions(c *gin.Context) {
	var req dto.QuestionListRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	questions, err := h.interviewService.ListQuestions(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *InterviewHandler) UpdateQuestion(c *gin.Context) {
	var req dto.UpdateQuestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	question, err := h.interviewService.UpdateQuestion(c.Param("questionId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *InterviewHandler) SetQuestionActive(c *gin.Context) {
	var req dto.SetQuestionActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.interviewService.SetQuestionActive(c.Param("questionId"), *req.Active); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question updated"})
}

func (h *InterviewHandler) DeleteQuestion(c *gin.Context) {
	if err := h.interviewService.DeleteQuestion(c.Param("questionId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}
