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

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.Auth(config.Session.CookieName, repo.Session, repo.User, log))

		// Any logged-in user can place and read orders; the service scopes
		// reads to the caller's own orders unless they manage orders.
		r.Post("/", orderHandler.CreateOrder)     // POST /api/orders
		r.Get("/", orderHandler.GetOrders)        // GET /api/orders
		r.Get("/{id}", orderHandler.GetOrderByID) // GET /api/orders/{id}

		// ==================== STAFF ROUTES ====================
		// Accountants hold update_payment_status only; the service narrows
		// their edits to the payment status field.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAny([]entity.Permission{
				entity.PermManageOrders,
				entity.PermUpdatePaymentStatus,
			}, log))

			r.Put("/{id}", orderHandler.UpdateOrder) // PUT /api/orders/{id}
		})
	})
}
