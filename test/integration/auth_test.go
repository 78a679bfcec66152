package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talentiq_backend/internal/models"
	"talentiq_backend/test/helpers"
)

// TestAuthFlow walks register -> login -> /me for a candidate.
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("flow_%d@test.com", time.Now().UnixNano())

	// 1. Register
	registerBody := map[string]interface{}{
		"email":     email,
		"password":  "super_password123",
		"role":      "candidate",
		"full_name": "Flow Candidate",
		"city":      "Almaty",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registration successful")

	// 2. Login works right away; verification only flips the badge.
	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)

	var authResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	err := json.Unmarshal([]byte(logBodyStr), &authResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, authResponse.AccessToken)
	assert.NotEmpty(t, authResponse.RefreshToken)

	// 3. /me returns the account with its profile
	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", authResponse.AccessToken, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, email)
	assert.Contains(t, meBodyStr, "Flow Candidate")
}

// TestRegister_DuplicateEmail checks the uniqueness guard.
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: "pass1234",
		Role:         models.UserRoleCandidate,
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"email":        email,
		"password":     "password_is_long_enough_123",
		"role":         "recruiter",
		"city":         "Astana",
		"company_name": "Test Company",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody)

	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Email already in use")
}

// TestLogin_BadPassword checks the credential error is uniform.
func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("badpass_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: "correct-password",
		Role:         models.UserRoleCandidate,
	})
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "WRONG-password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Invalid email or password")
}

// TestLogin_SuspendedAccount checks moderated accounts cannot sign in.
func TestLogin_SuspendedAccount(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("suspended_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: "password123",
		Role:         models.UserRoleCandidate,
		Status:       models.UserStatusSuspended,
	})
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "suspended")
}

// TestRefreshToken_Rotation checks refresh tokens are single use.
func TestRefreshToken_Rotation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("refresh_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: "password123",
		Role:         models.UserRoleCandidate,
	})
	assert.NoError(t, err)

	loginBody := map[string]interface{}{"email": email, "password": "password123"}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)

	var authResponse struct {
		RefreshToken string `json:"refresh_token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(logBodyStr), &authResponse))

	// First exchange succeeds
	refreshBody := map[string]interface{}{"refresh_token": authResponse.RefreshToken}
	refRes, refBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusOK, refRes.StatusCode)
	assert.Contains(t, refBodyStr, "access_token")

	// Replaying the consumed token fails
	replayRes, replayBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, replayRes.StatusCode)
	assert.Contains(t, replayBodyStr, "Invalid or expired token")
}

// TestChangePassword_Flow checks the old password stops working.
func TestChangePassword_Flow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("changepass_%d@test.com", time.Now().UnixNano())
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, email, "old_password123", models.UserRoleCandidate)

	changeBody := map[string]interface{}{
		"old_password": "old_password123",
		"new_password": "new_password456",
	}
	chRes, chBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/change-password", token, changeBody)
	assert.Equal(t, http.StatusOK, chRes.StatusCode, "Response: "+chBodyStr)

	oldLogin := map[string]interface{}{"email": email, "password": "old_password123"}
	oldRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", oldLogin)
	assert.Equal(t, http.StatusUnauthorized, oldRes.StatusCode)

	newLogin := map[string]interface{}{"email": email, "password": "new_password456"}
	newRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", newLogin)
	assert.Equal(t, http.StatusOK, newRes.StatusCode)
}
