package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"talentiq_backend/internal/models"
	"talentiq_backend/test/helpers"
)

type notificationList struct {
	Notifications []struct {
		ID     string `json:"id"`
		Type   string `json:"type"`
		Title  string `json:"title"`
		IsRead bool   `json:"is_read"`
	} `json:"notifications"`
	Total       int64 `json:"total"`
	UnreadCount int64 `json:"unread_count"`
}

// TestNotificationFlow walks an application notification from creation to read.
func TestNotificationFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Notified Role", models.JobStatusOpen)

	applyBody := map[string]interface{}{"cover_letter": "I would like to be considered."}
	applyRes, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", candidateToken, applyBody)
	assert.Equal(t, http.StatusCreated, applyRes.StatusCode)

	// The recruiter now holds one unread notification
	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)

	var list notificationList
	assert.NoError(t, json.Unmarshal([]byte(listBodyStr), &list))
	assert.Equal(t, int64(1), list.UnreadCount)
	if !assert.Len(t, list.Notifications, 1) {
		return
	}
	assert.Equal(t, models.NotificationTypeNewApplication, list.Notifications[0].Type)
	assert.Equal(t, "New application", list.Notifications[0].Title)
	assert.False(t, list.Notifications[0].IsRead)
	assert.Contains(t, listBodyStr, "Test Candidate")

	countRes, countBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, countRes.StatusCode)
	assert.Contains(t, countBodyStr, `"count":1`)

	readRes, readBodyStr := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+list.Notifications[0].ID+"/read", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, readRes.StatusCode)
	assert.Contains(t, readBodyStr, "Notification marked as read")

	afterRes, afterBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, afterRes.StatusCode)
	assert.Contains(t, afterBodyStr, `"count":0`)

	// Marking twice stays a no-op
	againRes, _ := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+list.Notifications[0].ID+"/read", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, againRes.StatusCode)

	unreadOnlyRes, unreadOnlyBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications?unread_only=true", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, unreadOnlyRes.StatusCode)
	assert.Contains(t, unreadOnlyBodyStr, `"notifications":[]`)
}

// TestNotification_StatusChangeNotifiesCandidate checks the candidate-side
// notification on a status move.
func TestNotification_StatusChangeNotifiesCandidate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, candidate, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Status Notify Role", models.JobStatusOpen)
	application := CreateTestApplication(t, ts.DB, job.ID, candidate.ID, models.ApplicationStatusSubmitted)

	statusBody := map[string]interface{}{"status": "review"}
	statusRes, _ := ts.SendRequest(t, "PUT", "/api/v1/applications/"+application.ID+"/status", recruiterToken, statusBody)
	assert.Equal(t, http.StatusOK, statusRes.StatusCode)

	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications", candidateToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, "Application under review")
	assert.Contains(t, listBodyStr, "Status Notify Role")
}

// TestNotification_ForeignUserForbidden checks ownership on read and delete.
func TestNotification_ForeignUserForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	candidateToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	strangerToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Private Notify Role", models.JobStatusOpen)
	applyRes, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", candidateToken, nil)
	assert.Equal(t, http.StatusCreated, applyRes.StatusCode)

	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)

	var list notificationList
	assert.NoError(t, json.Unmarshal([]byte(listBodyStr), &list))
	if !assert.NotEmpty(t, list.Notifications) {
		return
	}
	notificationID := list.Notifications[0].ID

	readRes, readBodyStr := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+notificationID+"/read", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, readRes.StatusCode)
	assert.Contains(t, readBodyStr, "Insufficient permissions")

	deleteRes, _ := ts.SendRequest(t, "DELETE", "/api/v1/notifications/"+notificationID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, deleteRes.StatusCode)
}

// TestNotification_MarkAllAndDelete covers the bulk read and removal paths.
func TestNotification_MarkAllAndDelete(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	recruiterToken, recruiter, _ := helpers.CreateAndLoginRecruiter(t, ts, ts.DB)
	firstToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)
	secondToken, _, _ := helpers.CreateAndLoginCandidate(t, ts, ts.DB)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Busy Role", models.JobStatusOpen)
	for _, token := range []string{firstToken, secondToken} {
		res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", token, nil)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
	}

	countRes, countBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, countRes.StatusCode)
	assert.Contains(t, countBodyStr, `"count":2`)

	allRes, allBodyStr := ts.SendRequest(t, "PUT", "/api/v1/notifications/read-all", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, allRes.StatusCode)
	assert.Contains(t, allBodyStr, "All notifications marked as read")

	afterRes, afterBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, afterRes.StatusCode)
	assert.Contains(t, afterBodyStr, `"count":0`)

	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)

	var list notificationList
	assert.NoError(t, json.Unmarshal([]byte(listBodyStr), &list))
	if !assert.Len(t, list.Notifications, 2) {
		return
	}

	deleteRes, deleteBodyStr := ts.SendRequest(t, "DELETE", "/api/v1/notifications/"+list.Notifications[0].ID, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, deleteRes.StatusCode)
	assert.Contains(t, deleteBodyStr, "Notification deleted")

	finalRes, finalBodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, finalRes.StatusCode)

	var final notificationList
	assert.NoError(t, json.Unmarshal([]byte(finalBodyStr), &final))
	assert.Equal(t, int64(1), final.Total)
}
