package usecase

import (
	"context"
	"fmt"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/dto/request"
	"solar-shop/internal/dto/response"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

// primaryAdminID is the bootstrap super admin; it can never be deleted.
const primaryAdminID int64 = 1

type UserService interface {
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req *request.UserUpdateRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id, actorID int64) error
	GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.ProfileUpdateRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID int64, req *request.ChangePasswordRequest) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("get users: %w", err)
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}
	return responses, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("User update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.User.FindByEmail(ctx, *req.Email)
		if err != nil {
			s.log.Error("Failed to check email", zap.Error(err), zap.String("email", *req.Email))
			return nil, fmt.Errorf("failed to check email")
		}
		if existing != nil {
			return nil, fmt.Errorf("email already exists")
		}
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("validation failed: role: unknown role")
		}
		user.Role = role
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = hashed
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("failed to update user")
	}

	s.log.Info("User updated", zap.Int64("user_id", id))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return fmt.Errorf("cannot delete your own account")
	}
	if id == primaryAdminID {
		return fmt.Errorf("cannot delete the primary admin account")
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("failed to delete user")
	}

	// Any open sessions die with the account.
	if err := s.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
		s.log.Warn("Failed to revoke sessions of deleted user",
			zap.Error(err), zap.Int64("user_id", id))
	}

	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, req *request.ProfileUpdateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Profile update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Self-service edits touch profile fields only; role and email stay as
	// they are.
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to update profile")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID int64, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("invalid credentials")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}
	user.PasswordHash = hashed

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to change password", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to change password")
	}

	s.log.Info("Password changed", zap.Int64("user_id", userID))
	return nil
}
