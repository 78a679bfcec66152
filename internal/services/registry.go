package services

import (
	"talentiq_backend/internal/email"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	JobService          JobService
	ApplicationService  ApplicationService
	InterviewService    InterviewService
	MatchingService     MatchingService
	NotificationService NotificationService
	AnalyticsService    AnalyticsService
	AdminService        AdminService
	EmailProvider       email.Provider
}

// normalizePagination clamps page and page size to sane values.
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// calculateTotalPages returns the page count for a result set.
func calculateTotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
