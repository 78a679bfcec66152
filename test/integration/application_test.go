package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"talentiq_backend/internal/models"
	"talentiq_backend/test/helpers"
)

// TestApplicationFlow walks apply -> recruiter review -> candidate view.
func TestApplicationFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Open Backend Role", models.JobStatusOpen)

	// 1. Candidate applies
	applyBody := map[string]interface{}{"cover_letter": "I would love to join."}
	applyRes, applyBodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", candidateToken, applyBody)
	assert.Equal(t, http.StatusCreated, applyRes.StatusCode, "Response: "+applyBodyStr)

	var application struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	assert.NoError(t, json.Unmarshal([]byte(applyBodyStr), &application))
	assert.Equal(t, "submitted", application.Status)

	// 2. Applying twice is rejected
	dupRes, dupBodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", candidateToken, applyBody)
	assert.Equal(t, http.StatusConflict, dupRes.StatusCode)
	assert.Contains(t, dupBodyStr, "already applied")

	// 3. Recruiter sees the application with the applicant summary
	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+job.ID+"/applications", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, application.ID)
	assert.Contains(t, listBodyStr, "Test Candidate")

	// 4. Recruiter moves it to review
	statusBody := map[string]interface{}{"status": "review"}
	updRes, updBodyStr := ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status", recruiterToken, statusBody)
	assert.Equal(t, http.StatusOK, updRes.StatusCode, "Response: "+updBodyStr)
	assert.Contains(t, updBodyStr, `"status":"review"`)

	// 5. Candidate sees the new status in their listing
	mineRes, mineBodyStr := ts.SendRequest(t, "GET", "/api/v1/applications/mine", candidateToken, nil)
	assert.Equal(t, http.StatusOK, mineRes.StatusCode)
	assert.Contains(t, mineBodyStr, `"status":"review"`)
	assert.Contains(t, mineBodyStr, "Open Backend Role")
}

// TestApply_ClosedJob checks closed postings reject applications.
func TestApply_ClosedJob(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Closed Role", models.JobStatusClosed)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", candidateToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "current job status")
}

// TestApply_RecruiterForbidden checks only candidates can apply.
func TestApply_RecruiterForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Not For Recruiters", models.JobStatusOpen)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", recruiterToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestApplicationStatus_IllegalTransition checks the transition map holds.
func TestApplicationStatus_IllegalTransition(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	_, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Transition Role", models.JobStatusOpen)
	application := CreateTestApplication(t, ts.DB, job.ID, candidate.ID, models.ApplicationStatusSubmitted)

	// submitted -> accepted skips review and interview
	statusBody := map[string]interface{}{"status": "accepted"}
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status", recruiterToken, statusBody)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Illegal application status transition")
}

// TestApplicationStatus_ForeignRecruiterForbidden checks ownership.
func TestApplicationStatus_ForeignRecruiterForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, owner, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	intruderToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	_, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, owner.ID, "Owned Role", models.JobStatusOpen)
	application := CreateTestApplication(t, ts.DB, job.ID, candidate.ID, models.ApplicationStatusSubmitted)

	statusBody := map[string]interface{}{"status": "review"}
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status", intruderToken, statusBody)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestWithdraw_SubmittedOnly checks withdrawing after review is blocked.
func TestWithdraw_SubmittedOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Withdraw Role", models.JobStatusOpen)

	submitted := CreateTestApplication(t, ts.DB, job.ID, candidate.ID, models.ApplicationStatusSubmitted)
	wRes, wBodyStr := ts.SendRequest(t, "DELETE", "/api/v1/applications/"+submitted.ID, candidateToken, nil)
	assert.Equal(t, http.StatusOK, wRes.StatusCode)
	assert.Contains(t, wBodyStr, "Application withdrawn")

	// Re-apply, move to review, then withdrawing must fail
	inReview := CreateTestApplication(t, ts.DB, job.ID, candidate.ID, models.ApplicationStatusReview)
	blockedRes, blockedBodyStr := ts.SendRequest(t, "DELETE", "/api/v1/applications/"+inReview.ID, candidateToken, nil)
	assert.Equal(t, http.StatusBadRequest, blockedRes.StatusCode)
	assert.Contains(t, blockedBodyStr, "only submitted applications can be withdrawn")
}

// TestApplicationView_CandidateAndRecruiterOnly checks read access.
func TestApplicationView_CandidateAndRecruiterOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	strangerToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Private Application Role", models.JobStatusOpen)
	application := CreateTestApplication(t, ts.DB, job.ID, candidate.ID, models.ApplicationStatusSubmitted)

	ownRes, _ := ts.SendRequest(t, "GET", "/api/v1/applications/"+application.ID, candidateToken, nil)
	assert.Equal(t, http.StatusOK, ownRes.StatusCode)

	recRes, _ := ts.SendRequest(t, "GET", "/api/v1/applications/"+application.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, recRes.StatusCode)

	strangerRes, _ := ts.SendRequest(t, "GET", "/api/v1/applications/"+application.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, strangerRes.StatusCode)
}
