package integration_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"talentiq_backend/test/helpers"
)

// TestAdminListUsers_Filter checks account listing with role and email filters.
func TestAdminListUsers_Filter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	_, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	path := "/api/v1/admin/users?role=candidate&search=" + url.QueryEscape(candidate.Email)
	res, bodyStr := ts.SendRequest(t, "GET", path, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, candidate.Email)
	assert.NotContains(t, bodyStr, recruiter.Email)
	assert.Contains(t, bodyStr, `"total":1`)

	// Non-admins cannot list accounts
	forbiddenRes, _ := ts.SendRequest(t, "GET", "/api/v1/admin/users", recruiterToken, nil)
	assert.Equal(t, http.StatusForbidden, forbiddenRes.StatusCode)
}

// TestAdminSetUserStatus_SuspendAndReactivate checks moderation locks the
// account out, revokes refresh tokens, and can be reversed.
func TestAdminSetUserStatus_SuspendAndReactivate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	_, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	// Capture a refresh token before the suspension
	loginBody := map[string]interface{}{"email": candidate.Email, "password": "password123"}
	loginRes, loginBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, loginRes.StatusCode)

	var tokens struct {
		RefreshToken string `json:"refresh_token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(loginBodyStr), &tokens))
	assert.NotEmpty(t, tokens.RefreshToken)

	suspendBody := map[string]interface{}{"status": "suspended"}
	suspendRes, suspendBodyStr := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+candidate.ID+"/status", adminToken, suspendBody)
	assert.Equal(t, http.StatusOK, suspendRes.StatusCode, "Response: "+suspendBodyStr)
	assert.Contains(t, suspendBodyStr, "User status updated")

	// Logins are rejected while suspended
	blockedRes, blockedBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, blockedRes.StatusCode)
	assert.Contains(t, blockedBodyStr, "suspended")

	// The old refresh token died with the suspension
	refreshBody := map[string]interface{}{"refresh_token": tokens.RefreshToken}
	refreshRes, refreshBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, refreshRes.StatusCode)
	assert.Contains(t, refreshBodyStr, "Invalid or expired token")

	reactivateBody := map[string]interface{}{"status": "active"}
	reactivateRes, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+candidate.ID+"/status", adminToken, reactivateBody)
	assert.Equal(t, http.StatusOK, reactivateRes.StatusCode)

	restoredRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, restoredRes.StatusCode)
}

// TestAdminSetUserStatus_Guards checks self-moderation and admin targets
// are rejected.
func TestAdminSetUserStatus_Guards(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	_, otherAdmin := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	candidateToken, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	suspendBody := map[string]interface{}{"status": "suspended"}

	selfRes, selfBodyStr := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+admin.ID+"/status", adminToken, suspendBody)
	assert.Equal(t, http.StatusForbidden, selfRes.StatusCode)
	assert.Contains(t, selfBodyStr, "Operation on self is not allowed")

	peerRes, peerBodyStr := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+otherAdmin.ID+"/status", adminToken, suspendBody)
	assert.Equal(t, http.StatusForbidden, peerRes.StatusCode)
	assert.Contains(t, peerBodyStr, "Insufficient permissions")

	roleRes, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+candidate.ID+"/status", candidateToken, suspendBody)
	assert.Equal(t, http.StatusForbidden, roleRes.StatusCode)

	missingRes, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+uuid.NewString()+"/status", adminToken, suspendBody)
	assert.Equal(t, http.StatusNotFound, missingRes.StatusCode)
}

// TestAdminPlatformStats checks the account totals endpoint.
func TestAdminPlatformStats(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	helpers.CreateAndLoginRecruiter(t, ts, ts.DB)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/admin/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var stats struct {
		TotalUsers int64 `json:"total_users"`
		Candidates int64 `json:"candidates"`
		Recruiters int64 `json:"recruiters"`
		Admins     int64 `json:"admins"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &stats))
	assert.GreaterOrEqual(t, stats.TotalUsers, int64(3))
	assert.GreaterOrEqual(t, stats.Candidates, int64(1))
	assert.GreaterOrEqual(t, stats.Recruiters, int64(1))
	assert.GreaterOrEqual(t, stats.Admins, int64(1))
}
