package adaptor

import (
	"encoding/json"
	"net/http"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/dto/request"
	"solar-shop/internal/usecase"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /api/orders (protected)
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "success", order)
}

// GetOrders handles GET /api/orders (protected). Staff with manage_orders see
// every order, everyone else only their own.
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	orders, err := h.service.GetOrders(r.Context(), userID, entity.UserRole(role))
	if err != nil {
		handleServiceError(h.log, w, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// GetOrderByID handles GET /api/orders/{id} (protected)
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	order, err := h.service.GetOrderByID(r.Context(), id, userID, entity.UserRole(role))
	if err != nil {
		handleServiceError(h.log, w, err, "get order by ID")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// UpdateOrder handles PUT /api/orders/{id} (manage_orders or
// update_payment_status)
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	var req request.OrderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	order, err := h.service.UpdateOrder(r.Context(), id, entity.UserRole(role), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}
