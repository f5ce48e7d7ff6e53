package request

type OrderItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	PaymentMethod   string `json:"paymentMethod" validate:"required,max=50"`
	// Items come from the client cart. Prices are NOT taken from the client;
	// the total is recomputed from the catalog at creation time.
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderUpdateRequest struct {
	Status          *string `json:"status,omitempty"`
	PaymentStatus   *string `json:"paymentStatus,omitempty" validate:"omitempty,oneof=pending completed failed"`
	ShippingStatus  *string `json:"shippingStatus,omitempty"`
	ShippingAddress *string `json:"shippingAddress,omitempty"`
}
