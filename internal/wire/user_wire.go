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

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))
		r.Use(middleware.Require(entity.PermManageUsers, log))

		r.Get("/", userHandler.GetUsers)          // GET /api/users
		r.Put("/{id}", userHandler.UpdateUser)    // PUT /api/users/{id}
		r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/users/{id}
	})

	// ==================== PROFILE ROUTES ====================
	r.Route("/api/profile", func(r chi.Router) {
		r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))

		r.Get("/", userHandler.GetProfile)              // GET /api/profile
		r.Put("/", userHandler.UpdateProfile)           // PUT /api/profile
		r.Put("/password", userHandler.ChangePassword)  // PUT /api/profile/password
	})
}
