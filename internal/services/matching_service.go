package services

import (
	"sort"

	"talentiq_backend/internal/algorithms"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"
)

const (
	defaultMatchLimit = 10
	// matchCandidatePool caps how many profiles a single matching run scores.
	matchCandidatePool = 500
)

type MatchingService interface {
	TopCandidatesForJob(jobID, requesterID string, req *dto.MatchCandidatesRequest) (*dto.MatchListResponse, error)
}

type MatchingServiceImpl struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewMatchingService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) MatchingService {
	return &MatchingServiceImpl{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

// TopCandidatesForJob scores public candidate profiles against a posting
// and returns the best matches, highest score first. Owner only.
func (s *MatchingServiceImpl) TopCandidatesForJob(jobID, requesterID string, req *dto.MatchCandidatesRequest) (*dto.MatchListResponse, error) {
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

	candidates, err := s.loadCandidatePool(job)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultMatchLimit
	}
	minScore := req.MinScore

	type scored struct {
		profile *models.CandidateProfile
		score   float64
		reasons []string
	}

	matches := make([]scored, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		score, reasons := algorithms.CalculateMatchScore(job, candidate)
		if score < minScore {
			continue
		}
		matches = append(matches, scored{profile: candidate, score: score, reasons: reasons})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].profile.ID < matches[j].profile.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]*dto.MatchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, &dto.MatchResult{
			CandidateID:     m.profile.UserID,
			FullName:        m.profile.FullName,
			Headline:        m.profile.Headline,
			City:            m.profile.City,
			ExperienceYears: m.profile.ExperienceYears,
			Skills:          []string(m.profile.Skills),
			Score:           m.score,
			Reasons:         m.reasons,
		})
	}

	return &dto.MatchListResponse{
		JobID:     jobID,
		Results:   results,
		Evaluated: len(candidates),
	}, nil
}

// --- Helper functions ---

// loadCandidatePool narrows the pool with a skills prefilter when the
// posting names skills; otherwise every public profile is fair game.
func (s *MatchingServiceImpl) loadCandidatePool(job *models.Job) ([]models.CandidateProfile, error) {
	if len(job.Skills) > 0 {
		candidates, err := s.profileRepo.FindCandidatesBySkills([]string(job.Skills), matchCandidatePool)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
		// No skill overlap anywhere. Fall back to the open pool so city and
		// experience can still surface reasonable profiles.
	}
	return s.profileRepo.FindPublicCandidateProfiles(matchCandidatePool)
}
