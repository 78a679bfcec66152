package services

import (
	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"
)

type AdminService interface {
	ListUsers(req *dto.AdminListUsersRequest) (*dto.AdminUserListResponse, error)
	SetUserStatus(adminID, userID string, req *dto.SetUserStatusRequest) error
	GetPlatformStats() (*dto.PlatformStatsResponse, error)
}

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAdminService(userRepo repositories.UserRepository) AdminService {
	return &AdminServiceImpl{userRepo: userRepo}
}

// ListUsers returns accounts matching the filter.
func (s *AdminServiceImpl) ListUsers(req *dto.AdminListUsersRequest) (*dto.AdminUserListResponse, error) {
	page, pageSize := normalizePagination(req.Page, req.PageSize)

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     models.UserRole(req.Role),
		Status:   models.UserStatus(req.Status),
		Search:   req.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]*dto.UserDTO, 0, len(users))
	for i := range users {
		user := &users[i]
		rows = append(rows, &dto.UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Role:       user.Role,
			Status:     user.Status,
			IsVerified: user.IsVerified,
			CreatedAt:  user.CreatedAt,
		})
	}

	return &dto.AdminUserListResponse{
		Users:      rows,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// SetUserStatus suspends, bans or reactivates an account. Admins cannot
// moderate themselves or each other.
func (s *AdminServiceImpl) SetUserStatus(adminID, userID string, req *dto.SetUserStatusRequest) error {
	if adminID == userID {
		return apperrors.ErrCannotModifySelf
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if user.Role == models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.userRepo.UpdateStatus(userID, req.Status); err != nil {
		return apperrors.InternalError(err)
	}

	// A suspended or banned account loses its sessions immediately.
	if req.Status != models.UserStatusActive {
		if err := s.userRepo.DeleteUserRefreshTokens(userID); err != nil {
			logger.Warn("failed to revoke refresh tokens", "user_id", userID, "error", err)
		}
	}

	return nil
}

// GetPlatformStats returns account totals by role.
func (s *AdminServiceImpl) GetPlatformStats() (*dto.PlatformStatsResponse, error) {
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.PlatformStatsResponse{TotalUsers: total}

	counts := []struct {
		role models.UserRole
		dest *int64
	}{
		{models.UserRoleCandidate, &stats.Candidates},
		{models.UserRoleRecruiter, &stats.Recruiters},
		{models.UserRoleAdmin, &stats.Admins},
	}
	for _, c := range counts {
		count, err := s.userRepo.CountByRole(c.role)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		*c.dest = count
	}

	return stats, nil
}
