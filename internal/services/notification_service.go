package services

import (
	"encoding/json"

	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"
)

type NotificationService interface {
	ListNotifications(userID string, req *dto.NotificationListRequest) (*dto.NotificationListResponse, error)
	GetUnreadCount(userID string) (*dto.UnreadCountResponse, error)
	MarkAsRead(notificationID, userID string) error
	MarkAllAsRead(userID string) error
	DeleteNotification(notificationID, userID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

// ListNotifications returns the caller's notifications, newest first.
func (s *NotificationServiceImpl) ListNotifications(userID string, req *dto.NotificationListRequest) (*dto.NotificationListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	notifications, total, err := s.notificationRepo.FindUserNotifications(userID, repositories.NotificationCriteria{
		UnreadOnly: req.UnreadOnly,
		Type:       req.Type,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    calculateTotalPages(total, pageSize),
	}, nil
}

func (s *NotificationServiceImpl) GetUnreadCount(userID string) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

// MarkAsRead marks one notification as read. Owner only.
func (s *NotificationServiceImpl) MarkAsRead(notificationID, userID string) error {
	notification, err := s.findOwned(notificationID, userID)
	if err != nil {
		return err
	}
	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteNotification removes one notification. Owner only.
func (s *NotificationServiceImpl) DeleteNotification(notificationID, userID string) error {
	if _, err := s.findOwned(notificationID, userID); err != nil {
		return err
	}

	if err := s.notificationRepo.DeleteNotification(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helper functions ---

func (s *NotificationServiceImpl) findOwned(notificationID, userID string) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if notification.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return notification, nil
}

func buildNotificationResponse(notification *models.Notification) *dto.NotificationResponse {
	response := &dto.NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}

	if len(notification.Data) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(notification.Data, &data); err == nil {
			response.Data = data
		}
	}

	return response
}
