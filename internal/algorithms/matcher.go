package algorithms

import (
	"strings"

	"talentiq_backend/internal/models"
)

// CalculateMatchScore calculates how well a candidate matches a job (0-100)
func CalculateMatchScore(job *models.Job, candidate *models.CandidateProfile) (float64, []string) {
	score := 0.0
	reasons := []string{}

	// Skills overlap (40 points)
	skillScore := calculateSkillOverlap(job.Skills, candidate.Skills)
	score += skillScore
	if skillScore > 0 && len(job.Skills) > 0 {
		reasons = append(reasons, "Matching skills")
	}

	// City match (15 points)
	if job.City != "" {
		if strings.EqualFold(job.City, candidate.City) {
			score += 15
			reasons = append(reasons, "Same city")
		}
	} else {
		// No location requirement, give partial points
		score += 7
	}

	// Experience match (20 points)
	if job.ExperienceMin > 0 {
		if candidate.ExperienceYears >= job.ExperienceMin {
			score += 20
			reasons = append(reasons, "Meets experience requirement")
		}
	} else {
		score += 10
	}

	// Rate compatibility (15 points)
	if job.SalaryMin > 0 && job.SalaryMax > 0 {
		if candidate.DesiredRate == 0 {
			// Candidate did not state a rate, give partial points
			score += 7
		} else if candidate.DesiredRate >= job.SalaryMin && candidate.DesiredRate <= job.SalaryMax {
			score += 15
			reasons = append(reasons, "Rate within budget")
		}
	} else {
		score += 7
	}

	// Normalize to 0-100 scale (max possible is 90)
	normalizedScore := (score / 90.0) * 100.0
	if normalizedScore > 100 {
		normalizedScore = 100
	}

	return normalizedScore, reasons
}

// calculateSkillOverlap calculates overlap between required and candidate
// skills (0-40 points).
func calculateSkillOverlap(jobSkills, candidateSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 20 // No specific requirement, give half points
	}

	matches := 0
	for _, js := range jobSkills {
		for _, cs := range candidateSkills {
			if strings.EqualFold(js, cs) {
				matches++
				break
			}
		}
	}

	// Percentage of required skills that match
	overlapPercent := float64(matches) / float64(len(jobSkills))
	return overlapPercent * 40.0
}
