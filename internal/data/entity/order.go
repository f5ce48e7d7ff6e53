package entity

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// CanTransitionTo enforces the payment state machine: pending -> completed or
// pending -> failed, both terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return true
	}
	return s == PaymentStatusPending &&
		(next == PaymentStatusCompleted || next == PaymentStatusFailed)
}

type Order struct {
	BaseSimple
	UserID          int64         `db:"user_id"`
	Status          string        `db:"status"`
	Total           float64       `db:"total"`
	ShippingAddress string        `db:"shipping_address"`
	PaymentMethod   string        `db:"payment_method"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	ShippingStatus  string        `db:"shipping_status"`
}

type OrderItem struct {
	ID        int64   `db:"id"`
	OrderID   int64   `db:"order_id"`
	ProductID int64   `db:"product_id"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
}
