package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"talentiq_backend/internal/models"
)

// CreateUser inserts a user, hashing the password when a raw one was
// supplied. Test users default to active and verified.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.IsVerified = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser inserts a user and logs in through the API so the
// returned token went through the real auth path.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, db, user)
	assert.NoError(t, err, "Creating a test user should not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Login response should be valid JSON")
	assert.NotEmpty(t, loginResponse.Token, "Access token should not be empty")

	return loginResponse.Token, user
}

// CreateAndLoginRecruiter creates a recruiter with a unique email plus
// a company profile.
func CreateAndLoginRecruiter(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User, *models.RecruiterProfile) {
	email := fmt.Sprintf("recruiter_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, db, email, "password123", models.UserRoleRecruiter)

	profile := &models.RecruiterProfile{
		UserID:      user.ID,
		CompanyName: "Test Company Inc.",
		City:        "Almaty",
		IsVerified:  true,
	}
	result := db.Create(profile)
	assert.NoError(t, result.Error, "Creating a recruiter profile should not fail")

	return token, user, profile
}

// CreateAndLoginCandidate creates a candidate with a unique email plus
// a public profile carrying a few skills.
func CreateAndLoginCandidate(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User, *models.CandidateProfile) {
	email := fmt.Sprintf("candidate_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, db, email, "password123", models.UserRoleCandidate)

	profile := &models.CandidateProfile{
		UserID:          user.ID,
		FullName:        "Test Candidate",
		Headline:        "Backend Developer",
		ExperienceYears: 3,
		City:            "Almaty",
		Skills:          pq.StringArray{"go", "postgresql", "docker"},
		IsPublic:        true,
	}
	result := db.Create(profile)
	assert.NoError(t, result.Error, "Creating a candidate profile should not fail")

	return token, user, profile
}

// CreateAndLoginAdmin creates an admin account. Admins have no profile.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, db, email, "password123", models.UserRoleAdmin)
}
