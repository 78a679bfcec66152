package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"talentiq_backend/test/helpers"
)

// TestCandidateProfile_UpdateOwn checks the self-service profile editing.
func TestCandidateProfile_UpdateOwn(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	candidateToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	updateBody := map[string]interface{}{
		"headline":         "Platform Engineer",
		"experience_years": 7,
		"skills":           []string{"go", "kubernetes", "terraform"},
		"desired_rate":     800000,
	}
	updRes, updBodyStr := ts.SendRequest(t, "PUT", "/api/v1/profiles/candidates/me", candidateToken, updateBody)
	assert.Equal(t, http.StatusOK, updRes.StatusCode, "Response: "+updBodyStr)
	assert.Contains(t, updBodyStr, "Platform Engineer")
	assert.Contains(t, updBodyStr, "kubernetes")

	getRes, getBodyStr := ts.SendRequest(t, "GET", "/api/v1/profiles/candidates/me", candidateToken, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBodyStr, `"experience_years":7`)
}

// TestCandidateProfile_PrivateHidden checks private profiles stay private.
func TestCandidateProfile_PrivateHidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	candidateToken, _, profile := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	// Public first: the recruiter can read it
	pubRes, _ := ts.SendRequest(t, "GET", "/api/v1/profiles/candidates/"+profile.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, pubRes.StatusCode)

	// Flip to private
	hideBody := map[string]interface{}{"is_public": false}
	hideRes, _ := ts.SendRequest(t, "PUT", "/api/v1/profiles/candidates/me", candidateToken, hideBody)
	assert.Equal(t, http.StatusOK, hideRes.StatusCode)

	hiddenRes, _ := ts.SendRequest(t, "GET", "/api/v1/profiles/candidates/"+profile.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusForbidden, hiddenRes.StatusCode)

	// The owner still sees it
	ownRes, _ := ts.SendRequest(t, "GET", "/api/v1/profiles/candidates/"+profile.ID, candidateToken, nil)
	assert.Equal(t, http.StatusOK, ownRes.StatusCode)
}

// TestCandidateProfile_ViewCounter checks foreign views bump the counter.
func TestCandidateProfile_ViewCounter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, _, profile := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	for i := 0; i < 3; i++ {
		res, _ := ts.SendRequest(t, "GET", "/api/v1/profiles/candidates/"+profile.ID, recruiterToken, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	}

	// The bump runs in a goroutine; give it a moment
	assert.Eventually(t, func() bool {
		var views int
		ts.DB.Raw("SELECT profile_views FROM candidate_profiles WHERE id = ?", profile.ID).Scan(&views)
		return views >= 3
	}, 2*time.Second, 50*time.Millisecond, "Foreign views should increment the counter")
}

// TestCandidateSearch_RecruiterOnly checks the talent search gate and filter.
func TestCandidateSearch_RecruiterOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	// Plant a candidate with a distinctive skill
	marker := fmt.Sprintf("rust%d", time.Now().UnixNano())
	_, _, profile := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	err := ts.DB.Model(profile).Update("skills", pq.StringArray{marker, "go"}).Error
	assert.NoError(t, err)

	path := "/api/v1/profiles/candidates?skills[]=" + url.QueryEscape(marker)

	// Candidates cannot browse the talent pool
	res, _ := ts.SendRequest(t, "GET", path, candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Recruiters can, and the filter matches
	okRes, okBodyStr := ts.SendRequest(t, "GET", path, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, okRes.StatusCode)
	assert.Contains(t, okBodyStr, profile.ID)
}

// TestRecruiterVerification_AdminOnly checks the verification flow.
func TestRecruiterVerification_AdminOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	recruiterToken, _, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	// A freshly registered recruiter starts unverified
	email := fmt.Sprintf("unverified_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":        email,
		"password":     "password_123456",
		"role":         "recruiter",
		"company_name": "Fresh Hiring LLC",
	}
	regRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)

	loginBody := map[string]interface{}{"email": email, "password": "password_123456"}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(logBodyStr), &auth))

	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/v1/profiles/recruiters/me", auth.AccessToken, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)

	var myProfile struct {
		ID         string `json:"id"`
		IsVerified bool   `json:"is_verified"`
	}
	assert.NoError(t, json.Unmarshal([]byte(meBodyStr), &myProfile))
	assert.False(t, myProfile.IsVerified)

	// Recruiters cannot verify themselves
	selfRes, _ := ts.SendRequest(t, "POST", "/api/v1/admin/recruiters/"+myProfile.ID+"/verify", recruiterToken, nil)
	assert.Equal(t, http.StatusForbidden, selfRes.StatusCode)

	// Admin flips the badge
	verRes, verBodyStr := ts.SendRequest(t, "POST", "/api/v1/admin/recruiters/"+myProfile.ID+"/verify", adminToken, nil)
	assert.Equal(t, http.StatusOK, verRes.StatusCode, "Response: "+verBodyStr)

	afterRes, afterBodyStr := ts.SendRequest(t, "GET", "/api/v1/profiles/recruiters/me", auth.AccessToken, nil)
	assert.Equal(t, http.StatusOK, afterRes.StatusCode)
	assert.Contains(t, afterBodyStr, `"is_verified":true`)
}
