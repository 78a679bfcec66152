package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"talentiq_backend/internal/models"
	"talentiq_backend/test/helpers"
)

// TestAnalyticsDashboard checks the recruiter overview aggregates.
func TestAnalyticsDashboard(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	_, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	openJob := CreateTestJob(t, ts.DB, recruiter.ID, "Analytics Open Role", models.JobStatusOpen)
	CreateTestJob(t, ts.DB, recruiter.ID, "Analytics Draft Role", models.JobStatusDraft)
	CreateTestApplication(t, ts.DB, openJob.ID, candidate.ID, models.ApplicationStatusSubmitted)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/analytics/dashboard", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var dashboard struct {
		JobStatusCounts    map[string]int64 `json:"job_status_counts"`
		ApplicationsPerJob []struct {
			JobID        string `json:"job_id"`
			Title        string `json:"title"`
			Applications int64  `json:"applications"`
		} `json:"applications_per_job"`
		ScoreDistribution  map[string]int64 `json:"score_distribution"`
		TopApplicantSkills []struct {
			Skill string `json:"skill"`
			Count int64  `json:"count"`
		} `json:"top_applicant_skills"`
		GeneratedAt string `json:"generated_at"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &dashboard))

	assert.Equal(t, int64(1), dashboard.JobStatusCounts["open"])
	assert.Equal(t, int64(1), dashboard.JobStatusCounts["draft"])
	assert.NotEmpty(t, dashboard.GeneratedAt)

	var openStat *int64
	for i := range dashboard.ApplicationsPerJob {
		if dashboard.ApplicationsPerJob[i].JobID == openJob.ID {
			openStat = &dashboard.ApplicationsPerJob[i].Applications
		}
	}
	if assert.NotNil(t, openStat, "open job should appear in per-job counts") {
		assert.Equal(t, int64(1), *openStat)
	}

	// Applicant skills come from the candidate profile
	skillSeen := false
	for _, s := range dashboard.TopApplicantSkills {
		if s.Skill == "go" {
			skillSeen = true
		}
	}
	assert.True(t, skillSeen, "applicant skills should surface in the dashboard")

	// No interview scores yet: every bucket sits at zero
	assert.Equal(t, int64(0), dashboard.ScoreDistribution["excellent"])
	assert.Contains(t, bodyStr, "score_distribution")
}

// TestAnalyticsDashboard_Cached checks repeat reads come from the cache.
func TestAnalyticsDashboard_Cached(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	CreateTestJob(t, ts.DB, recruiter.ID, "Cached Role", models.JobStatusOpen)

	firstRes, firstBodyStr := ts.SendRequest(t, "GET", "/api/v1/analytics/dashboard", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, firstRes.StatusCode)

	// A job created after the first read is invisible until the TTL lapses
	CreateTestJob(t, ts.DB, recruiter.ID, "Cached Late Role", models.JobStatusOpen)

	secondRes, secondBodyStr := ts.SendRequest(t, "GET", "/api/v1/analytics/dashboard", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, secondRes.StatusCode)

	var first, second struct {
		JobStatusCounts map[string]int64 `json:"job_status_counts"`
		GeneratedAt     string           `json:"generated_at"`
	}
	assert.NoError(t, json.Unmarshal([]byte(firstBodyStr), &first))
	assert.NoError(t, json.Unmarshal([]byte(secondBodyStr), &second))

	assert.Equal(t, first.GeneratedAt, second.GeneratedAt)
	assert.Equal(t, int64(1), second.JobStatusCounts["open"])
}

// TestAnalyticsDashboard_RecruiterOnly checks the role gate.
func TestAnalyticsDashboard_RecruiterOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	candidateToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/analytics/dashboard", candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
