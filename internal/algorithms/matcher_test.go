package algorithms

import (
	"testing"

	"talentiq_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMatchScore_PerfectMatch(t *testing.T) {
	job := &models.Job{
		City:          "Berlin",
		ExperienceMin: 3,
		SalaryMin:     50,
		SalaryMax:     90,
		Skills:        []string{"go", "postgresql", "docker"},
	}
	candidate := &models.CandidateProfile{
		City:            "Berlin",
		ExperienceYears: 5,
		DesiredRate:     70,
		Skills:          []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
	}

	score, reasons := CalculateMatchScore(job, candidate)

	assert.InDelta(t, 100.0, score, 0.01)
	assert.Contains(t, reasons, "Matching skills")
	assert.Contains(t, reasons, "Same city")
	assert.Contains(t, reasons, "Meets experience requirement")
	assert.Contains(t, reasons, "Rate within budget")
}

func TestCalculateMatchScore_NoOverlap(t *testing.T) {
	job := &models.Job{
		City:          "Berlin",
		ExperienceMin: 5,
		SalaryMin:     50,
		SalaryMax:     60,
		Skills:        []string{"rust", "embedded"},
	}
	candidate := &models.CandidateProfile{
		City:            "Madrid",
		ExperienceYears: 1,
		DesiredRate:     120,
		Skills:          []string{"photoshop"},
	}

	score, reasons := CalculateMatchScore(job, candidate)

	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)
}

func TestCalculateMatchScore_PartialSkillOverlap(t *testing.T) {
	job := &models.Job{
		Skills: []string{"go", "kafka", "redis", "terraform"},
	}
	candidate := &models.CandidateProfile{
		Skills: []string{"go", "redis"},
	}

	score, reasons := CalculateMatchScore(job, candidate)

	// Half the required skills (20) plus partial points for the absent
	// city, experience and salary requirements (7+10+7), out of 90.
	assert.InDelta(t, (44.0/90.0)*100.0, score, 0.01)
	assert.Equal(t, []string{"Matching skills"}, reasons)
}

func TestCalculateMatchScore_NoRequirementsGivesPartialPoints(t *testing.T) {
	job := &models.Job{}
	candidate := &models.CandidateProfile{}

	score, reasons := CalculateMatchScore(job, candidate)

	// 20 skill + 7 city + 10 experience + 7 rate.
	assert.InDelta(t, (44.0/90.0)*100.0, score, 0.01)
	assert.Empty(t, reasons)
}

func TestCalculateMatchScore_UnstatedRateGetsPartialCredit(t *testing.T) {
	job := &models.Job{
		SalaryMin: 40,
		SalaryMax: 80,
		Skills:    []string{"go"},
	}
	withRate := &models.CandidateProfile{Skills: []string{"go"}, DesiredRate: 100}
	noRate := &models.CandidateProfile{Skills: []string{"go"}}

	outOfBudget, _ := CalculateMatchScore(job, withRate)
	unstated, _ := CalculateMatchScore(job, noRate)

	assert.Greater(t, unstated, outOfBudget)
}

func TestCalculateSkillOverlap_CaseInsensitive(t *testing.T) {
	points := calculateSkillOverlap([]string{"Go", "SQL"}, []string{"go", "sql"})
	assert.InDelta(t, 40.0, points, 0.01)
}
