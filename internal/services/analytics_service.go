package services

import (
	"context"
	"time"

	"talentiq_backend/internal/cache"
	"talentiq_backend/internal/config"
	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"
)

const (
	dashboardJobLimit   = 10
	dashboardSkillLimit = 15
)

type AnalyticsService interface {
	GetRecruiterDashboard(ctx context.Context, recruiterID string) (*dto.RecruiterDashboard, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo repositories.AnalyticsRepository
	cache         cache.Cache
}

func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepository, cacheStore cache.Cache) AnalyticsService {
	return &AnalyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		cache:         cacheStore,
	}
}

// GetRecruiterDashboard assembles the recruiter's aggregate view. The
// result is cached briefly; dashboards tolerate slightly stale numbers.
func (s *AnalyticsServiceImpl) GetRecruiterDashboard(ctx context.Context, recruiterID string) (*dto.RecruiterDashboard, error) {
	cacheKey := dashboardCacheKey(recruiterID)

	var cached dto.RecruiterDashboard
	if cache.GetJSON(ctx, s.cache, cacheKey, &cached) {
		return &cached, nil
	}

	statusCounts, err := s.analyticsRepo.GetJobStatusCounts(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	applicationsPerJob, err := s.analyticsRepo.GetApplicationsPerJob(recruiterID, dashboardJobLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	scoresByJob, err := s.analyticsRepo.GetAverageScoreByJob(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	scoreDistribution, err := s.analyticsRepo.GetScoreDistribution(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	topSkills, err := s.analyticsRepo.GetTopApplicantSkills(recruiterID, dashboardSkillLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dashboard := &dto.RecruiterDashboard{
		JobStatusCounts:   statusCounts,
		ScoreDistribution: scoreDistribution,
		GeneratedAt:       time.Now(),
	}

	dashboard.ApplicationsPerJob = make([]dto.JobApplicationStat, 0, len(applicationsPerJob))
	for _, row := range applicationsPerJob {
		dashboard.ApplicationsPerJob = append(dashboard.ApplicationsPerJob, dto.JobApplicationStat{
			JobID:        row.JobID,
			Title:        row.Title,
			Applications: row.Applications,
		})
	}

	dashboard.ScoresByJob = make([]dto.JobScoreStat, 0, len(scoresByJob))
	for _, row := range scoresByJob {
		dashboard.ScoresByJob = append(dashboard.ScoresByJob, dto.JobScoreStat{
			JobID:        row.JobID,
			Title:        row.Title,
			AverageScore: row.AverageScore,
			Sessions:     row.Sessions,
		})
	}

	dashboard.TopApplicantSkills = make([]dto.SkillStat, 0, len(topSkills))
	for _, row := range topSkills {
		dashboard.TopApplicantSkills = append(dashboard.TopApplicantSkills, dto.SkillStat{
			Skill: row.Skill,
			Count: row.Count,
		})
	}

	ttl := time.Duration(config.GetConfig().Analysis.AnalyticsTTLMin) * time.Minute
	if err := cache.SetJSON(ctx, s.cache, cacheKey, dashboard, ttl); err != nil {
		logger.Warn("failed to cache dashboard", "recruiter_id", recruiterID, "error", err)
	}

	return dashboard, nil
}

func dashboardCacheKey(recruiterID string) string {
	return "analytics:dashboard:" + recruiterID
}
