package dto

import "talentiq_backend/internal/models"

// Admin user management

type AdminListUsersRequest struct {
	Role     string `form:"role" binding:"omitempty,is-user-role"`
	Status   string `form:"status" binding:"omitempty,oneof=pending active suspended banned"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type SetUserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required,oneof=active suspended banned"`
}

type AdminUserListResponse struct {
	Users      []*UserDTO `json:"users"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

type PlatformStatsResponse struct {
	TotalUsers int64 `json:"total_users"`
	Candidates int64 `json:"candidates"`
	Recruiters int64 `json:"recruiters"`
	Admins     int64 `json:"admins"`
}
