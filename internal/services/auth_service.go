package services

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"talentiq_backend/internal/auth"
	"talentiq_backend/internal/config"
	"talentiq_backend/internal/email"
	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/models"
	"talentiq_backend/internal/repositories"
	"talentiq_backend/internal/services/dto"
	"talentiq_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token string) error
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
	ChangePassword(userID, currentPassword, newPassword string) error
	Me(userID string) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

// Register creates an account plus the role-specific profile. Accounts are
// usable right away; email verification only flips the profile badge.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	if err := auth.ValidateRegistrationRole(string(req.Role)); err != nil {
		return apperrors.ErrInvalidUserRole
	}

	if err := s.validateRegisterRequest(req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.InternalError(err)
	}

	verificationToken := uuid.NewString()

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      string(hashedPassword),
		Role:              req.Role,
		Status:            models.UserStatusActive,
		IsVerified:        false,
		VerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	if err := s.createUserProfile(user, req); err != nil {
		s.userRepo.Delete(user.ID)
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	return nil
}

// Login authenticates by email and password and issues a token pair.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         s.buildUserDTO(user),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair. The
// old token is revoked either way.
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	newRefreshToken, err := s.rotateRefreshToken(token.UserID, refreshToken)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         s.buildUserDTO(user),
	}, nil
}

// Logout revokes one refresh token.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// VerifyEmail marks the account behind a verification token as verified.
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset issues a reset token. Always succeeds from the
// caller's point of view so the endpoint cannot be used to probe for
// registered addresses.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		return nil
	}

	resetToken := uuid.NewString()
	resetTokenExp := time.Now().Add(1 * time.Hour)

	user.ResetToken = resetToken
	user.ResetTokenExp = &resetTokenExp

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)

	return nil
}

// ResetPassword sets a new password from a reset token and revokes every
// session of the account.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, string(hashedPassword)); err != nil {
		return apperrors.InternalError(err)
	}

	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	s.userRepo.DeleteUserRefreshTokens(user.ID)

	return nil
}

// ChangePassword rotates the password of a signed-in user and revokes
// every refresh token.
func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, string(hashedPassword)); err != nil {
		return apperrors.InternalError(err)
	}

	s.userRepo.DeleteUserRefreshTokens(userID)

	return nil
}

// Me returns the caller's account with its profile attached.
func (s *AuthServiceImpl) Me(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := s.buildUserDTO(user)
	return &userDTO, nil
}

// --- Helper functions ---

// createUserProfile creates the role-specific profile row.
func (s *AuthServiceImpl) createUserProfile(user *models.User, req *dto.RegisterRequest) error {
	if user.Role == models.UserRoleCandidate {
		profile := &models.CandidateProfile{
			UserID:   user.ID,
			FullName: req.FullName,
			City:     req.City,
			IsPublic: true,
		}
		return s.profileRepo.CreateCandidateProfile(profile)
	} else if user.Role == models.UserRoleRecruiter {
		profile := &models.RecruiterProfile{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
			City:        req.City,
			IsVerified:  false,
		}
		return s.profileRepo.CreateRecruiterProfile(profile)
	}
	return nil
}

// createRefreshToken creates and stores a refresh token.
func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	cfg := config.GetConfig()

	refreshToken := auth.NewRefreshToken()
	refreshTokenExp := time.Now().Add(time.Duration(cfg.JWT.RefreshTTLDay) * 24 * time.Hour)

	refreshTokenModel := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: refreshTokenExp,
	}

	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return "", err
	}

	return refreshToken, nil
}

// rotateRefreshToken revokes the old token and issues a new one.
func (s *AuthServiceImpl) rotateRefreshToken(userID, oldToken string) (string, error) {
	if err := s.userRepo.DeleteRefreshToken(oldToken); err != nil {
		return "", err
	}
	return s.createRefreshToken(userID)
}

// checkUserStatus rejects accounts that must not sign in.
func (s *AuthServiceImpl) checkUserStatus(user *models.User) error {
	switch user.Status {
	case models.UserStatusSuspended:
		return apperrors.ErrUserSuspended
	case models.UserStatusBanned:
		return apperrors.ErrUserBanned
	}
	return nil
}

// buildUserDTO assembles the user view with its profile.
func (s *AuthServiceImpl) buildUserDTO(user *models.User) dto.UserDTO {
	userDTO := dto.UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		Status:     user.Status,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}

	if user.Role == models.UserRoleCandidate {
		if user.CandidateProfile != nil {
			userDTO.Profile = buildCandidateProfileResponse(user.CandidateProfile)
		} else if profile, err := s.profileRepo.FindCandidateProfileByUserID(user.ID); err == nil {
			userDTO.Profile = buildCandidateProfileResponse(profile)
		}
	} else if user.Role == models.UserRoleRecruiter {
		if user.RecruiterProfile != nil {
			userDTO.Profile = buildRecruiterProfileResponse(user.RecruiterProfile)
		} else if profile, err := s.profileRepo.FindRecruiterProfileByUserID(user.ID); err == nil {
			userDTO.Profile = buildRecruiterProfileResponse(profile)
		}
	}

	return userDTO
}

// sendVerificationEmail delivers the verification token, best effort.
func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		msg := &email.Email{
			To:      []string{to},
			Subject: "Confirm your TalentIQ account",
			Body: fmt.Sprintf(
				"Welcome to TalentIQ!\n\nConfirm your email address with this token: %s\n\nIf you did not sign up, ignore this message.",
				token,
			),
		}
		if err := s.emailProvider.Send(msg); err != nil {
			logger.Warn("failed to send verification email", "to", to, "error", err)
		}
	}()
}

// sendPasswordResetEmail delivers the reset token, best effort.
func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		msg := &email.Email{
			To:      []string{to},
			Subject: "Reset your TalentIQ password",
			Body: fmt.Sprintf(
				"A password reset was requested for your account.\n\nReset token: %s\n\nThe token expires in one hour. If you did not request a reset, ignore this message.",
				token,
			),
		}
		if err := s.emailProvider.Send(msg); err != nil {
			logger.Warn("failed to send password reset email", "to", to, "error", err)
		}
	}()
}

func (s *AuthServiceImpl) validateRegisterRequest(req *dto.RegisterRequest) error {
	if req.Role == models.UserRoleCandidate && req.FullName == "" {
		return apperrors.ValidationError("full_name is required for candidate accounts")
	}
	if req.Role == models.UserRoleRecruiter && req.CompanyName == "" {
		return apperrors.ValidationError("company_name is required for recruiter accounts")
	}
	return nil
}
