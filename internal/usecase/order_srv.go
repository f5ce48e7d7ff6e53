package usecase

import (
	"context"
	"fmt"
	"time"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/dto/request"
	"solar-shop/internal/dto/response"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, req *request.OrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context, actorID int64, actorRole entity.UserRole) ([]response.OrderResponse, error)
	GetOrderByID(ctx context.Context, id, actorID int64, actorRole entity.UserRole) (*response.OrderResponse, error)
	UpdateOrder(ctx context.Context, id int64, actorRole entity.UserRole, req *request.OrderUpdateRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID int64, req *request.OrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// The cart is client state and cannot be trusted: unit prices come from
	// the catalog as of now, and the total is recomputed here. Quantities
	// for the same product are merged.
	merged := make(map[int64]int)
	var productOrder []int64
	for _, item := range req.Items {
		if _, seen := merged[item.ProductID]; !seen {
			productOrder = append(productOrder, item.ProductID)
		}
		merged[item.ProductID] += item.Quantity
	}

	var (
		items []*entity.OrderItem
		total float64
	)
	for _, productID := range productOrder {
		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			s.log.Error("Failed to load product for order",
				zap.Error(err), zap.Int64("product_id", productID))
			return nil, fmt.Errorf("failed to load product")
		}
		if product == nil {
			return nil, fmt.Errorf("validation failed: items: unknown product %d", productID)
		}

		quantity := merged[productID]
		items = append(items, &entity.OrderItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
		total += product.Price * float64(quantity)
	}

	order := &entity.Order{
		BaseSimple:      entity.BaseSimple{CreatedAt: time.Now()},
		UserID:          userID,
		Status:          "pending",
		Total:           total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
		ShippingStatus:  "processing",
	}

	if err := s.repo.Order.CreateWithItems(ctx, order, items); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to create order")
	}

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Float64("total", total),
		zap.Int("items", len(items)))

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) GetOrders(ctx context.Context, actorID int64, actorRole entity.UserRole) ([]response.OrderResponse, error) {
	var (
		orders []*entity.Order
		err    error
	)

	// Customers see only their own orders; staff with manage_orders see all.
	if entity.PermissionsFor(actorRole).Has(entity.PermManageOrders) {
		orders, err = s.repo.Order.FindAll(ctx)
	} else {
		orders, err = s.repo.Order.FindByUserID(ctx, actorID)
	}
	if err != nil {
		s.log.Error("Failed to get orders", zap.Error(err), zap.Int64("actor_id", actorID))
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id, actorID int64, actorRole entity.UserRole) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.Int64("order_id", id))
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	if !entity.PermissionsFor(actorRole).Has(entity.PermManageOrders) && order.UserID != actorID {
		return nil, fmt.Errorf("forbidden")
	}

	items, err := s.repo.Order.FindItems(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order items", zap.Error(err), zap.Int64("order_id", id))
		return nil, fmt.Errorf("get order items: %w", err)
	}

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id int64, actorRole entity.UserRole, req *request.OrderUpdateRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Order update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.Int64("order_id", id))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	perms := entity.PermissionsFor(actorRole)

	// An accountant's update is narrowed to the payment status, whatever
	// else the payload carries.
	paymentOnly := actorRole == entity.RoleAccountant
	if paymentOnly && req.PaymentStatus == nil {
		return nil, fmt.Errorf("validation failed: paymentStatus: no payment status provided")
	}

	if req.PaymentStatus != nil {
		if !perms.Has(entity.PermUpdatePaymentStatus) {
			return nil, fmt.Errorf("forbidden")
		}
		next := entity.PaymentStatus(*req.PaymentStatus)
		if !order.PaymentStatus.CanTransitionTo(next) {
			return nil, fmt.Errorf("validation failed: paymentStatus: invalid transition %s -> %s",
				order.PaymentStatus, next)
		}
		order.PaymentStatus = next
	}

	if !paymentOnly {
		if req.Status != nil {
			order.Status = *req.Status
		}
		if req.ShippingStatus != nil {
			order.ShippingStatus = *req.ShippingStatus
		}
		if req.ShippingAddress != nil {
			order.ShippingAddress = *req.ShippingAddress
		}
	}

	if err := s.repo.Order.Update(ctx, order); err != nil {
		s.log.Error("Failed to update order", zap.Error(err), zap.Int64("order_id", id))
		return nil, fmt.Errorf("failed to update order")
	}

	s.log.Info("Order updated",
		zap.Int64("order_id", id),
		zap.String("payment_status", string(order.PaymentStatus)),
		zap.String("actor_role", string(actorRole)))

	resp := response.OrderToResponse(order, nil)
	return &resp, nil
}
