package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"talentiq_backend/test/helpers"
)

// createMatchableJob posts and publishes a job whose skills carry a unique
// marker so the candidate pool is deterministic across parallel tests.
func createMatchableJob(t *testing.T, ts *helpers.TestServer, recruiterToken, marker string) string {
	t.Helper()

	jobBody := map[string]interface{}{
		"title":           "Matching Target " + marker,
		"description":     "Role used to exercise candidate ranking.",
		"city":            "Almaty",
		"employment_type": "full_time",
		"salary_min":      300000,
		"salary_max":      700000,
		"experience_min":  2,
		"skills":          []string{marker},
	}
	createRes, createBodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs", recruiterToken, jobBody)
	assert.Equal(t, http.StatusCreated, createRes.StatusCode, "Response: "+createBodyStr)

	var job struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(createBodyStr), &job))

	pubRes, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/publish", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, pubRes.StatusCode)

	return job.ID
}

// TestMatching_TopCandidates checks the ranked shortlist for a posting.
func TestMatching_TopCandidates(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	marker := fmt.Sprintf("matchskill%d", time.Now().UnixNano())
	jobID := createMatchableJob(t, ts, recruiterToken, marker)

	// Plant a public candidate holding the marker skill
	_, candidate, profile := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	err := ts.DB.Model(profile).Update("skills", pq.StringArray{marker, "go"}).Error
	assert.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID+"/matches", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var matches struct {
		JobID   string `json:"job_id"`
		Results []struct {
			CandidateID string   `json:"candidate_id"`
			Score       float64  `json:"score"`
			Reasons     []string `json:"reasons"`
		} `json:"results"`
		Evaluated int `json:"evaluated"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &matches))
	assert.Equal(t, jobID, matches.JobID)
	assert.GreaterOrEqual(t, matches.Evaluated, 1)

	if assert.NotEmpty(t, matches.Results) {
		top := matches.Results[0]
		assert.Equal(t, candidate.ID, top.CandidateID)
		assert.Greater(t, top.Score, 50.0)
		assert.Contains(t, top.Reasons, "Matching skills")
		assert.Contains(t, top.Reasons, "Same city")
		assert.Contains(t, top.Reasons, "Meets experience requirement")
	}
}

// TestMatching_MinScoreFilter checks the min_score cutoff drops weak matches.
func TestMatching_MinScoreFilter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	marker := fmt.Sprintf("cutoffskill%d", time.Now().UnixNano())
	jobID := createMatchableJob(t, ts, recruiterToken, marker)

	_, candidate, profile := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	err := ts.DB.Model(profile).Update("skills", pq.StringArray{marker}).Error
	assert.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID+"/matches?min_score=99", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, candidate.ID)
	assert.Contains(t, bodyStr, `"results":[]`)
}

// TestMatching_OwnerOnly checks that only the posting's owner can rank.
func TestMatching_OwnerOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	ownerToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	foreignToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	marker := fmt.Sprintf("ownerskill%d", time.Now().UnixNano())
	jobID := createMatchableJob(t, ts, ownerToken, marker)

	foreignRes, foreignBodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID+"/matches", foreignToken, nil)
	assert.Equal(t, http.StatusForbidden, foreignRes.StatusCode)
	assert.Contains(t, foreignBodyStr, "Insufficient permissions")

	candidateRes, _ := ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID+"/matches", candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, candidateRes.StatusCode)
}
