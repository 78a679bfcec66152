package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"talentiq_backend/internal/analysis"
	"talentiq_backend/internal/cache"
	"talentiq_backend/internal/config"
	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"
)

const defaultSessionQuestionCount = 5

type InterviewService interface {
	// Question bank
	CreateQuestion(req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(questionID string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	SetQuestionActive(questionID string, active bool) error
	DeleteQuestion(questionID string) error
	ListQuestions(req *dto.QuestionListRequest) (*dto.QuestionListResponse, error)
	SeedQuestions() error

	// Sessions
	StartSession(candidateID string, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	SubmitResponse(ctx context.Context, sessionID, candidateID string, req *dto.SubmitResponseRequest) (*dto.ResponseDetail, error)
	CompleteSession(sessionID, candidateID string) (*models.SessionSummary, error)
	GetSession(sessionID, requesterID string) (*dto.SessionResponse, error)
	ListMySessions(candidateID string, req *dto.SessionListRequest) (*dto.SessionListResponse, error)
	GetAnalysis(ctx context.Context, responseID, requesterID string) (*dto.AnalysisResponse, error)

	// Worker support
	ExpireStaleSessions(cutoff time.Time) (int64, error)
}

type InterviewServiceImpl struct {
	questionRepo     repositories.QuestionRepository
	sessionRepo      repositories.SessionRepository
	jobRepo          repositories.JobRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	cache            cache.Cache
}

func NewInterviewService(
	questionRepo repositories.QuestionRepository,
	sessionRepo repositories.SessionRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	cacheStore cache.Cache,
) InterviewService {
	return &InterviewServiceImpl{
		questionRepo:     questionRepo,
		sessionRepo:      sessionRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		cache:            cacheStore,
	}
}

// Question bank operations. Admin only, enforced at the route level.

func (s *InterviewServiceImpl) CreateQuestion(req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := &models.InterviewQuestion{
		Prompt:     req.Prompt,
		Type:       models.QuestionType(req.Type),
		Difficulty: req.Difficulty,
		Tags:       pq.StringArray(req.Tags),
		IsActive:   true,
	}
	if req.Difficulty == 0 {
		question.Difficulty = 1
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildQuestionResponse(question), nil
}

func (s *InterviewServiceImpl) UpdateQuestion(questionID string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrQuestionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Prompt != nil {
		question.Prompt = *req.Prompt
	}
	if req.Type != nil {
		question.Type = models.QuestionType(*req.Type)
	}
	if req.Difficulty != nil {
		question.Difficulty = *req.Difficulty
	}
	if req.Tags != nil {
		question.Tags = pq.StringArray(req.Tags)
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildQuestionResponse(question), nil
}

func (s *InterviewServiceImpl) SetQuestionActive(questionID string, active bool) error {
	if err := s.questionRepo.SetActive(questionID, active); err != nil {
		if apperrors.Is(err, repositories.ErrQuestionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteQuestion removes a question from the bank. Answered questions keep
// their responses; only the prompt disappears from future sessions, so
// deactivating is usually the better call.
func (s *InterviewServiceImpl) DeleteQuestion(questionID string) error {
	if err := s.questionRepo.Delete(questionID); err != nil {
		if apperrors.Is(err, repositories.ErrQuestionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *InterviewServiceImpl) ListQuestions(req *dto.QuestionListRequest) (*dto.QuestionListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	questions, total, err := s.questionRepo.List(repositories.QuestionCriteria{
		Type:          req.Type,
		Tags:          req.Tags,
		MinDifficulty: req.MinDifficulty,
		MaxDifficulty: req.MaxDifficulty,
		ActiveOnly:    req.ActiveOnly,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, buildQuestionResponse(&questions[i]))
	}

	return &dto.QuestionListResponse{
		Questions:  responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// SeedQuestions loads the starter bank on first boot. A bank with any
// active question is left alone.
func (s *InterviewServiceImpl) SeedQuestions() error {
	count, err := s.questionRepo.CountActive()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := defaultQuestionBank()
	if err := s.questionRepo.CreateBatch(seed); err != nil {
		return err
	}
	logger.Info("seeded interview question bank", "questions", len(seed))
	return nil
}

// Session operations

// StartSession opens a practice session for the candidate and deals a hand
// of random active questions. One active session per candidate at a time.
func (s *InterviewServiceImpl) StartSession(candidateID string, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	candidate, err := s.userRepo.FindByID(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if candidate.Role != models.UserRoleCandidate {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if existing, err := s.sessionRepo.FindActiveSessionByCandidate(candidateID); err == nil {
		return nil, apperrors.ErrConflict(nil, "interview",
			fmt.Sprintf("an active session already exists: %s", existing.ID))
	}

	if req.JobID != nil {
		job, err := s.jobRepo.FindByID(*req.JobID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		if job.Status != models.JobStatusOpen {
			return nil, apperrors.ErrInvalidJobStatus
		}
	}

	count := req.QuestionCount
	if count <= 0 {
		count = defaultSessionQuestionCount
	}

	questions, err := s.questionRepo.PickRandomActive(models.QuestionType(req.QuestionType), count)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(questions) == 0 {
		return nil, apperrors.ErrInvalidOperation("interview", "no active questions available for this type")
	}

	session := &models.InterviewSession{
		CandidateID: candidateID,
		JobID:       req.JobID,
		Status:      models.SessionStatusActive,
		StartedAt:   time.Now(),
	}
	if err := s.sessionRepo.CreateSession(session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	questionResponses := make([]*dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		questionResponses = append(questionResponses, buildQuestionResponse(&questions[i]))
	}

	return &dto.StartSessionResponse{
		Session:   *buildSessionResponse(session, 0),
		Questions: questionResponses,
	}, nil
}

// SubmitResponse records one answer, scores it immediately and persists the
// result. The analysis is written through to the cache so the follow-up
// read does not hit the database.
func (s *InterviewServiceImpl) SubmitResponse(ctx context.Context, sessionID, candidateID string, req *dto.SubmitResponseRequest) (*dto.ResponseDetail, error) {
	session, err := s.sessionRepo.FindSessionByID(sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if session.CandidateID != candidateID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if session.Status != models.SessionStatusActive {
		return nil, apperrors.ErrSessionNotActive
	}

	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrQuestionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !question.IsActive {
		return nil, apperrors.ErrQuestionInactive
	}

	response := &models.InterviewResponse{
		SessionID:       sessionID,
		QuestionID:      req.QuestionID,
		AnswerText:      req.AnswerText,
		DurationSeconds: req.DurationSeconds,
	}
	if err := s.sessionRepo.CreateResponse(response); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateResponse) {
			return nil, apperrors.ErrConflict(err, "interview", "question already answered in this session")
		}
		return nil, apperrors.InternalError(err)
	}

	result := analysis.Analyze(question.Prompt, req.AnswerText, req.DurationSeconds, string(question.Type))

	responseAnalysis, err := s.storeAnalysis(response.ID, result)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	analysisDTO := buildAnalysisResponse(responseAnalysis)
	cacheKey := analysisCacheKey(response.ID)
	ttl := time.Duration(config.GetConfig().Analysis.CacheTTLMinutes) * time.Minute
	if err := cache.SetJSON(ctx, s.cache, cacheKey, analysisDTO, ttl); err != nil {
		logger.Warn("failed to cache analysis", "response_id", response.ID, "error", err)
	}

	response.Question = question
	response.Analysis = responseAnalysis
	return buildResponseDetail(response), nil
}

// CompleteSession closes an active session and returns its summary. Empty
// sessions cannot be completed, they expire instead.
func (s *InterviewServiceImpl) CompleteSession(sessionID, candidateID string) (*models.SessionSummary, error) {
	session, err := s.sessionRepo.FindSessionByID(sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if session.CandidateID != candidateID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if session.Status != models.SessionStatusActive {
		return nil, apperrors.ErrSessionNotActive
	}

	count, err := s.sessionRepo.CountResponsesBySession(sessionID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count == 0 {
		return nil, apperrors.ErrSessionEmpty
	}

	averages, err := s.sessionRepo.GetSessionScoreAverages(sessionID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	if err := s.sessionRepo.UpdateSessionStatus(sessionID, models.SessionStatusCompleted, &now); err != nil {
		return nil, apperrors.InternalError(err)
	}

	summary := buildSessionSummary(sessionID, averages)

	if err := s.notificationRepo.CreateSessionCompletedNotification(candidateID, sessionID, summary.AverageOverall); err != nil {
		logger.Warn("failed to create session completed notification", "session_id", sessionID, "error", err)
	}

	return summary, nil
}

// GetSession returns a session with its responses and analyses. Visible to
// the candidate and, for job-linked sessions, to the posting's owner.
func (s *InterviewServiceImpl) GetSession(sessionID, requesterID string) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindSessionByID(sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.canViewSession(session, requesterID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	response := buildSessionResponse(session, len(session.Responses))
	response.Responses = make([]*dto.ResponseDetail, 0, len(session.Responses))
	for i := range session.Responses {
		response.Responses = append(response.Responses, buildResponseDetail(&session.Responses[i]))
	}
	return response, nil
}

// ListMySessions returns the candidate's session history.
func (s *InterviewServiceImpl) ListMySessions(candidateID string, req *dto.SessionListRequest) (*dto.SessionListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	sessions, total, err := s.sessionRepo.FindSessionsByCandidate(candidateID, repositories.SessionCriteria{
		Status:   req.Status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		count, _ := s.sessionRepo.CountResponsesBySession(sessions[i].ID)
		responses = append(responses, buildSessionResponse(&sessions[i], int(count)))
	}

	return &dto.SessionListResponse{
		Sessions:   responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// GetAnalysis returns the stored analysis for one response, cache first.
func (s *InterviewServiceImpl) GetAnalysis(ctx context.Context, responseID, requesterID string) (*dto.AnalysisResponse, error) {
	response, err := s.sessionRepo.FindResponseByID(responseID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResponseNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	session, err := s.sessionRepo.FindSessionByID(response.SessionID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !s.canViewSession(session, requesterID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	cacheKey := analysisCacheKey(responseID)
	var cached dto.AnalysisResponse
	if cache.GetJSON(ctx, s.cache, cacheKey, &cached) {
		return &cached, nil
	}

	responseAnalysis := response.Analysis
	if responseAnalysis == nil {
		responseAnalysis, err = s.sessionRepo.FindAnalysisByResponseID(responseID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrAnalysisNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	analysisDTO := buildAnalysisResponse(responseAnalysis)
	ttl := time.Duration(config.GetConfig().Analysis.CacheTTLMinutes) * time.Minute
	if err := cache.SetJSON(ctx, s.cache, cacheKey, analysisDTO, ttl); err != nil {
		logger.Warn("failed to cache analysis", "response_id", responseID, "error", err)
	}

	return analysisDTO, nil
}

// ExpireStaleSessions marks sessions started before the cutoff and never
// completed as expired. Called by the expiry worker.
func (s *InterviewServiceImpl) ExpireStaleSessions(cutoff time.Time) (int64, error) {
	return s.sessionRepo.ExpireStaleSessions(cutoff)
}

// --- Helper functions ---

func (s *InterviewServiceImpl) canViewSession(session *models.InterviewSession, requesterID string) bool {
	if session.CandidateID == requesterID {
		return true
	}
	if session.JobID == nil {
		return false
	}
	job, err := s.jobRepo.FindByID(*session.JobID)
	if err != nil {
		return false
	}
	return job.RecruiterID == requesterID
}

func (s *InterviewServiceImpl) storeAnalysis(responseID string, result analysis.AnalysisResult) (*models.ResponseAnalysis, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	responseAnalysis := &models.ResponseAnalysis{
		ResponseID:       responseID,
		OverallScore:     result.OverallScore,
		Relevance:        result.Relevance,
		Clarity:          result.Clarity,
		Completeness:     result.Completeness,
		Professionalism:  result.Professionalism,
		WordCount:        result.WordCount,
		SpeakingRateWpm:  result.SpeakingRateWpm,
		FillerWordCount:  result.FillerWordCount,
		Strengths:        pq.StringArray(result.Strengths),
		Improvements:     pq.StringArray(result.Improvements),
		KeywordMatches:   pq.StringArray(result.KeywordMatches),
		DetailedFeedback: result.DetailedFeedback,
		Payload:          datatypes.JSON(payload),
	}

	if err := s.sessionRepo.CreateAnalysis(responseAnalysis); err != nil {
		return nil, err
	}
	return responseAnalysis, nil
}

func analysisCacheKey(responseID string) string {
	return "analysis:response:" + responseID
}

func buildSessionSummary(sessionID string, averages *repositories.SessionScoreAverages) *models.SessionSummary {
	summary := &models.SessionSummary{
		SessionID:              sessionID,
		ResponseCount:          int(averages.ResponseCount),
		AverageOverall:         averages.AverageOverall,
		AverageRelevance:       averages.AverageRelevance,
		AverageClarity:         averages.AverageClarity,
		AverageCompleteness:    averages.AverageCompleteness,
		AverageProfessionalism: averages.AverageProfessionalism,
	}

	dimensions := []struct {
		name  string
		value float64
	}{
		{"relevance", averages.AverageRelevance},
		{"clarity", averages.AverageClarity},
		{"completeness", averages.AverageCompleteness},
		{"professionalism", averages.AverageProfessionalism},
	}

	strongest, weakest := dimensions[0], dimensions[0]
	for _, d := range dimensions[1:] {
		if d.value > strongest.value {
			strongest = d
		}
		if d.value < weakest.value {
			weakest = d
		}
	}
	summary.StrongestDimension = strongest.name
	summary.WeakestDimension = weakest.name

	return summary
}

func buildQuestionResponse(question *models.InterviewQuestion) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		ID:         question.ID,
		Prompt:     question.Prompt,
		Type:       string(question.Type),
		Difficulty: question.Difficulty,
		Tags:       []string(question.Tags),
		IsActive:   question.IsActive,
		CreatedAt:  question.CreatedAt,
	}
}

func buildSessionResponse(session *models.InterviewSession, responseCount int) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:            session.ID,
		CandidateID:   session.CandidateID,
		JobID:         session.JobID,
		Status:        session.Status,
		StartedAt:     session.StartedAt,
		CompletedAt:   session.CompletedAt,
		ResponseCount: responseCount,
	}
}

func buildResponseDetail(response *models.InterviewResponse) *dto.ResponseDetail {
	detail := &dto.ResponseDetail{
		ID:              response.ID,
		SessionID:       response.SessionID,
		QuestionID:      response.QuestionID,
		AnswerText:      response.AnswerText,
		DurationSeconds: response.DurationSeconds,
		CreatedAt:       response.CreatedAt,
	}
	if response.Question != nil {
		detail.Question = buildQuestionResponse(response.Question)
	}
	if response.Analysis != nil {
		detail.Analysis = buildAnalysisResponse(response.Analysis)
	}
	return detail
}

func buildAnalysisResponse(responseAnalysis *models.ResponseAnalysis) *dto.AnalysisResponse {
	return &dto.AnalysisResponse{
		ID:               responseAnalysis.ID,
		ResponseID:       responseAnalysis.ResponseID,
		OverallScore:     responseAnalysis.OverallScore,
		Relevance:        responseAnalysis.Relevance,
		Clarity:          responseAnalysis.Clarity,
		Completeness:     responseAnalysis.Completeness,
		Professionalism:  responseAnalysis.Professionalism,
		WordCount:        responseAnalysis.WordCount,
		SpeakingRateWpm:  responseAnalysis.SpeakingRateWpm,
		FillerWordCount:  responseAnalysis.FillerWordCount,
		Strengths:        []string(responseAnalysis.Strengths),
		Improvements:     []string(responseAnalysis.Improvements),
		KeywordMatches:   []string(responseAnalysis.KeywordMatches),
		DetailedFeedback: responseAnalysis.DetailedFeedback,
		CreatedAt:        responseAnalysis.CreatedAt,
	}
}

// defaultQuestionBank is the seed set loaded when the bank is empty.
func defaultQuestionBank() []*models.InterviewQuestion {
	entries := []struct {
		prompt     string
		qType      models.QuestionType
		difficulty int
		tags       []string
	}{
		{"Tell me about yourself and your professional background.", models.QuestionTypeIntroduction, 1, []string{"warmup"}},
		{"Why are you interested in this position?", models.QuestionTypeIntroduction, 1, []string{"warmup", "motivation"}},
		{"Walk me through your most significant project and your role in it.", models.QuestionTypeIntroduction, 2, []string{"experience"}},
		{"Describe a time you had a conflict with a colleague. How did you resolve it?", models.QuestionTypeBehavioral, 2, []string{"conflict", "teamwork"}},
		{"Tell me about a time you failed. What did you learn from it?", models.QuestionTypeBehavioral, 3, []string{"failure", "growth"}},
		{"Give an example of a situation where you had to meet a tight deadline.", models.QuestionTypeBehavioral, 2, []string{"deadline", "pressure"}},
		{"Describe a time you had to convince a team to adopt your approach.", models.QuestionTypeBehavioral, 3, []string{"influence", "teamwork"}},
		{"How would you handle a production incident affecting many customers while your lead is unreachable?", models.QuestionTypeSituational, 4, []string{"incident", "ownership"}},
		{"A stakeholder keeps changing requirements mid-sprint. What do you do?", models.QuestionTypeSituational, 3, []string{"requirements", "communication"}},
		{"You discover a teammate's code has a serious flaw right before release. How do you proceed?", models.QuestionTypeSituational, 3, []string{"quality", "communication"}},
		{"Explain the difference between concurrency and parallelism.", models.QuestionTypeTechnical, 3, []string{"fundamentals", "concurrency"}},
		{"How does an index speed up a database query, and when can it hurt?", models.QuestionTypeTechnical, 3, []string{"database", "performance"}},
		{"Describe how you would design a rate limiter for a public API.", models.QuestionTypeTechnical, 4, []string{"design", "api"}},
		{"What happens between typing a URL into a browser and the page rendering?", models.QuestionTypeTechnical, 2, []string{"fundamentals", "networking"}},
		{"What does a healthy code review look like to you?", models.QuestionTypeGeneral, 2, []string{"process", "quality"}},
		{"How do you keep your skills current?", models.QuestionTypeGeneral, 1, []string{"growth"}},
		{"Where do you see yourself in five years?", models.QuestionTypeGeneral, 1, []string{"motivation"}},
	}

	questions := make([]*models.InterviewQuestion, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, &models.InterviewQuestion{
			Prompt:     e.prompt,
			Type:       e.qType,
			Difficulty: e.difficulty,
			Tags:       pq.StringArray(e.tags),
			IsActive:   true,
		})
	}
	return questions
}
