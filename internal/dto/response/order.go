package response

import (
	"time"

	"solar-shop/internal/data/entity"
)

type OrderItemResponse struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderResponse struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"userId"`
	Status          string               `json:"status"`
	Total           float64              `json:"total"`
	ShippingAddress string               `json:"shippingAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	PaymentStatus   entity.PaymentStatus `json:"paymentStatus"`
	ShippingStatus  string               `json:"shippingStatus"`
	CreatedAt       time.Time            `json:"createdAt"`
	Items           []OrderItemResponse  `json:"items,omitempty"`
}

func OrderToResponse(order *entity.Order, items []*entity.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Status:          order.Status,
		Total:           order.Total,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus,
		ShippingStatus:  order.ShippingStatus,
		CreatedAt:       order.CreatedAt,
	}

	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return resp
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = OrderToResponse(order, nil)
	}
	return responses
}
