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

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/products", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/products - Catalog listing with ?category= and ?featured= filters
		r.Get("/", productHandler.GetProducts)

		// GET /api/products/{id} - Product details
		r.Get("/{id}", productHandler.GetProductByID)

		// ==================== MANAGEMENT ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))
			r.Use(middleware.Require(entity.PermManageProducts, log))

			r.Post("/", productHandler.CreateProduct)       // POST /api/products
			r.Put("/{id}", productHandler.UpdateProduct)    // PUT /api/products/{id}
			r.Delete("/{id}", productHandler.DeleteProduct) // DELETE /api/products/{id}
		})
	})
}
