package wire

import (
	"solar-shop/internal/adaptor"
	"solar-shop/internal/data/repository"
	"solar-shop/pkg/middleware"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Create account and open a session
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Username or email plus password
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))

		r.Post("/api/logout", authHandler.Logout)   // POST /api/logout
		r.Get("/api/user", authHandler.CurrentUser) // GET /api/user
	})
}
