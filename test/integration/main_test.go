package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"talentiq_backend/internal/models"
	"talentiq_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, starting it on first
// use. Tests are skipped entirely when DATABASE_URL is not set, so the
// suite only runs where a throwaway Postgres is available.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set; skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_PORT", "4001")
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

// TestMain only handles global teardown.
func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}

// CreateTestJob inserts a job directly, bypassing the API.
func CreateTestJob(t *testing.T, db *gorm.DB, recruiterID, title string, status models.JobStatus) models.Job {
	deadline := time.Now().Add(14 * 24 * time.Hour)
	job := models.Job{
		RecruiterID:    recruiterID,
		Title:          title,
		Description:    "Test description",
		City:           "Almaty",
		EmploymentType: "full_time",
		SalaryMin:      300000,
		SalaryMax:      600000,
		Skills:         []string{"go", "postgresql"},
		Status:         status,
		Deadline:       &deadline,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}

// CreateTestApplication inserts an application directly.
func CreateTestApplication(t *testing.T, db *gorm.DB, jobID, candidateID string, status models.ApplicationStatus) models.Application {
	application := models.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		CoverLetter: "Test cover letter",
		Status:      status,
	}
	if err := db.Create(&application).Error; err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}
	return application
}
