package wire

import (
	"solar-shop/internal/adaptor"
	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/pkg/middleware"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/public-settings - Storefront subset, no auth
	r.Get("/api/public-settings", settingsHandler.GetPublicSettings)

	r.Route("/api/settings", func(r chi.Router) {
		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))
			r.Use(middleware.Require(entity.PermManageSettings, log))

			r.Get("/", settingsHandler.GetSettings)    // GET /api/settings
			r.Put("/", settingsHandler.UpdateSettings) // PUT /api/settings
		})
	})
}
