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

func wireBlog(
	r chi.Router,
	blogHandler *adaptor.BlogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/blog-posts", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// Session is optional here: editors see unapproved posts, everyone
		// else only approved ones.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Optional(config.Session.CookieName, repo.Session, repo.User, log))

			r.Get("/", blogHandler.GetPosts)        // GET /api/blog-posts
			r.Get("/{id}", blogHandler.GetPostByID) // GET /api/blog-posts/{id}
		})

		// ==================== EDITOR ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))
			r.Use(middleware.Require(entity.PermWriteBlog, log))

			r.Post("/", blogHandler.CreatePost)    // POST /api/blog-posts
			r.Put("/{id}", blogHandler.UpdatePost) // PUT /api/blog-posts/{id}
		})

		// ==================== MODERATOR ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))
			r.Use(middleware.Require(entity.PermModerateBlog, log))

			r.Delete("/{id}", blogHandler.DeletePost) // DELETE /api/blog-posts/{id}
		})
	})
}
