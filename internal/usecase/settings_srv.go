package usecase

import (
	"context"
	"fmt"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/dto/request"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (*entity.Settings, error)
	// GetPublicSettings is the unauthenticated subset served to the storefront.
	GetPublicSettings(ctx context.Context) (map[string]any, error)
	UpdateSettings(ctx context.Context, req *request.SettingsRequest) (*entity.Settings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
	log  *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, log *zap.Logger) SettingsService {
	return &settingsService{
		repo: repo,
		log:  log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Error("Failed to get settings", zap.Error(err))
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) GetPublicSettings(ctx context.Context) (map[string]any, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Error("Failed to get public settings", zap.Error(err))
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings.Public(), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req *request.SettingsRequest) (*entity.Settings, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Settings validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	settings := &entity.Settings{
		SiteName:        req.SiteName,
		SiteDescription: req.SiteDescription,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		MaintenanceMode: req.MaintenanceMode,
		EnableBlog:      req.EnableBlog,
		EnableShop:      req.EnableShop,
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		s.log.Error("Failed to save settings", zap.Error(err))
		return nil, fmt.Errorf("failed to save settings")
	}

	s.log.Info("Settings updated", zap.String("site_name", settings.SiteName))
	return settings, nil
}
