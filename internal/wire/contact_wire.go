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

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/contact", func(r chi.Router) {
		// POST /api/contact - Anyone can write in
		r.Post("/", contactHandler.SubmitContact)

		// ==================== INBOX ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))
			r.Use(middleware.Require(entity.PermViewInbox, log))

			r.Get("/", contactHandler.GetContactSubmissions)        // GET /api/contact
			r.Put("/{id}", contactHandler.ResolveContactSubmission) // PUT /api/contact/{id}
		})
	})

	r.Route("/api/newsletter", func(r chi.Router) {
		// POST /api/newsletter - Public subscribe, idempotent per email
		r.Post("/", contactHandler.SubscribeNewsletter)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))
			r.Use(middleware.Require(entity.PermViewInbox, log))

			r.Get("/", contactHandler.GetNewsletterSubscriptions) // GET /api/newsletter
		})
	})
}
