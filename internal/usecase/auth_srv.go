package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/dto/request"
	"solar-shop/internal/dto/response"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

// ClientInfo carries request metadata persisted with each session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, client ClientInfo) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID int64) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, client ClientInfo) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("username already exists")
	}

	existingUser, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// Registration always creates a customer; roles are assigned later by a
	// super admin through user management.
	user := &entity.User{
		BaseSimple:   entity.BaseSimple{CreatedAt: time.Now()},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// Auto login after register
	session, err := s.createSession(ctx, user.ID, client)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.Int64("user_id", user.ID))
		// Continue without a session; the user can still log in.
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// An "@" marks the identifier as an email, otherwise it is a username.
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(req.Identifier, "@") {
		user, err = s.repo.User.FindByEmail(ctx, req.Identifier)
	} else {
		user, err = s.repo.User.FindByUsername(ctx, req.Identifier)
	}
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("identifier", req.Identifier))
		return nil, fmt.Errorf("failed to find user")
	}

	// Missing user and wrong password produce the same error, so the response
	// does not reveal which identifiers exist.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("identifier", req.Identifier))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("invalid credentials")
	}

	session, err := s.createSession(ctx, user.ID, client)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load current user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to load user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// createSession issues a fresh 7-day session. The lifetime slides only here,
// at login; requests never extend it.
func (s *authService) createSession(ctx context.Context, userID int64, client ClientInfo) (*entity.Session, error) {
	ttl := time.Duration(s.config.Session.TTLDays) * 24 * time.Hour

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		UserID:     userID,
		Token:      utils.GenerateSessionToken(),
		ExpiresAt:  time.Now().Add(ttl),
	}
	if client.UserAgent != "" {
		session.UserAgent = &client.UserAgent
	}
	if client.IPAddress != "" {
		session.IPAddress = &client.IPAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
