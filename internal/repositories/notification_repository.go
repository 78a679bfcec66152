package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talentiq_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")
)

type NotificationRepository interface {
	// Notification operations
	CreateNotification(notification *models.Notification) error
	CreateBulkNotifications(notifications []*models.Notification) error
	FindNotificationByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error)
	MarkAsRead(notificationID string) error
	MarkAllAsRead(userID string) error
	DeleteNotification(id string) error
	DeleteUserNotifications(userID string) error
	GetUnreadCount(userID string) (int64, error)

	// Worker support
	DeleteReadNotificationsBefore(cutoff time.Time) (int64, error)

	// Factory methods for common notification types
	CreateApplicationStatusNotification(candidateID, jobTitle string, status models.ApplicationStatus) error
	CreateNewApplicationNotification(recruiterID, jobID, applicationID, candidateName string) error
	CreateSessionCompletedNotification(candidateID, sessionID string, averageScore float64) error
	CreateJobClosedNotification(recruiterID, jobID, jobTitle string) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

type NotificationCriteria struct {
	UnreadOnly bool   `form:"unread_only"`
	Type       string `form:"type"`
	Page       int    `form:"page" binding:"min=1"`
	PageSize   int    `form:"page_size" binding:"min=1,max=100"`
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

// Notification operations

func (r *NotificationRepositoryImpl) CreateNotification(notification *models.Notification) error {
	if err := r.validateNotification(notification); err != nil {
		return err
	}

	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateBulkNotifications(notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	for _, notification := range notifications {
		if err := r.validateNotification(notification); err != nil {
			return err
		}
	}

	return r.db.CreateInBatches(notifications, 100).Error
}

func (r *NotificationRepositoryImpl) FindNotificationByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	query := r.db.Where("user_id = ?", userID)

	if criteria.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}

	// Get total count
	var total int64
	if err := query.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination and ordering
	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(notificationID string) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) error {
	result := r.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": time.Now(),
	})

	return result.Error
}

func (r *NotificationRepositoryImpl) DeleteNotification(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) DeleteUserNotifications(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Notification{}).Error
}

func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// Worker support

func (r *NotificationRepositoryImpl) DeleteReadNotificationsBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

// Factory methods for common notification types

func (r *NotificationRepositoryImpl) CreateApplicationStatusNotification(candidateID, jobTitle string, status models.ApplicationStatus) error {
	var title, message string

	switch status {
	case models.ApplicationStatusReview:
		title = "Application under review"
		message = fmt.Sprintf("Your application for '%s' is being reviewed", jobTitle)
	case models.ApplicationStatusInterview:
		title = "Interview invitation"
		message = fmt.Sprintf("You have been invited to interview for '%s'", jobTitle)
	case models.ApplicationStatusAccepted:
		title = "Application accepted"
		message = fmt.Sprintf("Congratulations, your application for '%s' was accepted", jobTitle)
	case models.ApplicationStatusRejected:
		title = "Application update"
		message = fmt.Sprintf("Your application for '%s' was not successful this time", jobTitle)
	default:
		return errors.New("unsupported status for notification")
	}

	notification := &models.Notification{
		UserID:  candidateID,
		Type:    models.NotificationTypeApplicationStatus,
		Title:   title,
		Message: message,
	}

	return r.CreateNotification(notification)
}

func (r *NotificationRepositoryImpl) CreateNewApplicationNotification(recruiterID, jobID, applicationID, candidateName string) error {
	data := map[string]interface{}{
		"job_id":         jobID,
		"application_id": applicationID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	notification := &models.Notification{
		UserID:  recruiterID,
		Type:    models.NotificationTypeNewApplication,
		Title:   "New application",
		Message: fmt.Sprintf("%s applied to your job posting", candidateName),
		Data:    datatypes.JSON(jsonData),
	}

	return r.CreateNotification(notification)
}

func (r *NotificationRepositoryImpl) CreateSessionCompletedNotification(candidateID, sessionID string, averageScore float64) error {
	data := map[string]interface{}{
		"session_id": sessionID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	notification := &models.Notification{
		UserID:  candidateID,
		Type:    models.NotificationTypeSessionCompleted,
		Title:   "Interview practice complete",
		Message: fmt.Sprintf("Your practice session scored %.0f overall", averageScore),
		Data:    datatypes.JSON(jsonData),
	}

	return r.CreateNotification(notification)
}

func (r *NotificationRepositoryImpl) CreateJobClosedNotification(recruiterID, jobID, jobTitle string) error {
	data := map[string]interface{}{
		"job_id": jobID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	notification := &models.Notification{
		UserID:  recruiterID,
		Type:    models.NotificationTypeJobClosed,
		Title:   "Job posting closed",
		Message: fmt.Sprintf("Your job posting '%s' reached its deadline and was closed", jobTitle),
		Data:    datatypes.JSON(jsonData),
	}

	return r.CreateNotification(notification)
}

// Helper methods

func (r *NotificationRepositoryImpl) validateNotification(notification *models.Notification) error {
	if notification.UserID == "" {
		return errors.New("user ID is required")
	}

	if notification.Type == "" {
		return errors.New("notification type is required")
	}

	if notification.Title == "" {
		return errors.New("notification title is required")
	}

	validTypes := map[string]bool{
		models.NotificationTypeApplicationStatus: true,
		models.NotificationTypeNewApplication:    true,
		models.NotificationTypeSessionCompleted:  true,
		models.NotificationTypeJobClosed:         true,
	}

	if !validTypes[notification.Type] {
		return fmt.Errorf("invalid notification type: %s", notification.Type)
	}

	if len(notification.Data) > 0 {
		if !json.Valid(notification.Data) {
			return ErrInvalidNotificationData
		}
	}

	return nil
}
