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

func wireUpload(
	r chi.Router,
	uploadHandler *adaptor.UploadHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/upload", func(r chi.Router) {
		r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))
		// Product managers and blog editors both upload images
		r.Use(middleware.RequireAny([]entity.Permission{
			entity.PermManageProducts,
			entity.PermWriteBlog,
		}, log))

		r.Post("/{uploadType}", uploadHandler.UploadImage) // POST /api/upload/{uploadType}
	})
}
