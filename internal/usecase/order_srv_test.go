package usecase

import (
	"context"
	"strings"
	"testing"

	"solar-shop/internal/cart"
	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/dto/request"
)

func seedProduct(t *testing.T, repo *repository.Repository, name string, price float64) int64 {
	t.Helper()
	product := &entity.Product{Name: name, Description: name, Price: price, Category: "panels", Stock: 10}
	if err := repo.Product.Create(context.Background(), product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product.ID
}

func TestCreateOrderRecomputesTotal(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "400W Panel", 299.99)
	inverterID := seedProduct(t, repo, "Inverter", 850)

	// The request carries no prices; whatever the client believed, the total
	// comes from the catalog.
	order, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "1 Solar Way",
		PaymentMethod:   "card",
		Items: []request.OrderItemRequest{
			{ProductID: panelID, Quantity: 2},
			{ProductID: inverterID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	want := 299.99*2 + 850
	if order.Total != want {
		t.Errorf("expected total %f, got %f", want, order.Total)
	}
	if order.Status != "pending" || order.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("unexpected initial state: %s/%s", order.Status, order.PaymentStatus)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].Price != 299.99 {
		t.Errorf("expected catalog price on item, got %f", order.Items[0].Price)
	}
}

func TestCreateOrderFromCartLines(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "400W Panel", 299.99)

	// The browser cart carries a stale price; only its product ids and
	// quantities make it into the checkout payload.
	var c cart.Cart
	c.Add(cart.Item{ProductID: panelID, Name: "400W Panel", Price: 199.99, Quantity: 1})
	c.Add(cart.Item{ProductID: panelID, Quantity: 2})

	items := make([]request.OrderItemRequest, 0, c.Len())
	for _, line := range c.Items() {
		items = append(items, request.OrderItemRequest{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	order, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "1 Solar Way",
		PaymentMethod:   "card",
		Items:           items,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if len(order.Items) != 1 || order.Items[0].Quantity != 3 {
		t.Fatalf("expected one merged line of 3, got %+v", order.Items)
	}
	if want := 299.99 * 3; order.Total != want {
		t.Errorf("expected catalog-priced total %f, got %f", want, order.Total)
	}
}

func TestCreateOrderMergesDuplicateItems(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "400W Panel", 100)

	order, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "1 Solar Way",
		PaymentMethod:   "card",
		Items: []request.OrderItemRequest{
			{ProductID: panelID, Quantity: 2},
			{ProductID: panelID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if len(order.Items) != 1 {
		t.Fatalf("expected duplicate lines merged, got %d items", len(order.Items))
	}
	if order.Items[0].Quantity != 5 {
		t.Errorf("expected merged quantity 5, got %d", order.Items[0].Quantity)
	}
	if order.Total != 500 {
		t.Errorf("expected total 500, got %f", order.Total)
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	_, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "1 Solar Way",
		PaymentMethod:   "card",
		Items:           []request.OrderItemRequest{{ProductID: 99, Quantity: 1}},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown product") {
		t.Errorf("expected unknown product error, got %v", err)
	}
}

func TestGetOrdersScopedByRole(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "Panel", 100)
	for _, userID := range []int64{1, 2} {
		if _, err := svc.CreateOrder(context.Background(), userID, &request.OrderRequest{
			ShippingAddress: "addr",
			PaymentMethod:   "card",
			Items:           []request.OrderItemRequest{{ProductID: panelID, Quantity: 1}},
		}); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	own, err := svc.GetOrders(context.Background(), 1, entity.RoleCustomer)
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	if len(own) != 1 || own[0].UserID != 1 {
		t.Errorf("customer should see only own orders, got %v", own)
	}

	all, err := svc.GetOrders(context.Background(), 3, entity.RoleSalesManager)
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("sales manager should see all orders, got %d", len(all))
	}
}

func TestGetOrderByIDOwnership(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "Panel", 100)
	order, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "addr",
		PaymentMethod:   "card",
		Items:           []request.OrderItemRequest{{ProductID: panelID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := svc.GetOrderByID(context.Background(), order.ID, 2, entity.RoleCustomer); err == nil || err.Error() != "forbidden" {
		t.Errorf("expected forbidden for another customer, got %v", err)
	}

	if _, err := svc.GetOrderByID(context.Background(), order.ID, 1, entity.RoleCustomer); err != nil {
		t.Errorf("owner should read own order, got %v", err)
	}

	if _, err := svc.GetOrderByID(context.Background(), order.ID, 9, entity.RoleSuperAdmin); err != nil {
		t.Errorf("admin should read any order, got %v", err)
	}
}

func TestAccountantUpdateNarrowedToPaymentStatus(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "Panel", 100)
	order, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "original address",
		PaymentMethod:   "card",
		Items:           []request.OrderItemRequest{{ProductID: panelID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	completed := "completed"
	shipped := "shipped"
	newAddr := "hijacked address"

	updated, err := svc.UpdateOrder(context.Background(), order.ID, entity.RoleAccountant, &request.OrderUpdateRequest{
		PaymentStatus:   &completed,
		ShippingStatus:  &shipped,
		ShippingAddress: &newAddr,
	})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}

	if updated.PaymentStatus != entity.PaymentStatusCompleted {
		t.Errorf("expected payment status completed, got %s", updated.PaymentStatus)
	}
	// Everything else in the payload is dropped for accountants.
	if updated.ShippingStatus != "processing" {
		t.Errorf("accountant changed shipping status: %s", updated.ShippingStatus)
	}
	if updated.ShippingAddress != "original address" {
		t.Errorf("accountant changed shipping address: %s", updated.ShippingAddress)
	}
}

func TestAccountantUpdateWithoutPaymentStatusFails(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "Panel", 100)
	order, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "addr",
		PaymentMethod:   "card",
		Items:           []request.OrderItemRequest{{ProductID: panelID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	shipped := "shipped"
	_, err = svc.UpdateOrder(context.Background(), order.ID, entity.RoleAccountant, &request.OrderUpdateRequest{
		ShippingStatus: &shipped,
	})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestPaymentStatusTransitionGuard(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "Panel", 100)
	order, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "addr",
		PaymentMethod:   "card",
		Items:           []request.OrderItemRequest{{ProductID: panelID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	completed := "completed"
	if _, err := svc.UpdateOrder(context.Background(), order.ID, entity.RoleSuperAdmin, &request.OrderUpdateRequest{
		PaymentStatus: &completed,
	}); err != nil {
		t.Fatalf("pending -> completed should be allowed: %v", err)
	}

	// Completed is terminal.
	failed := "failed"
	_, err = svc.UpdateOrder(context.Background(), order.ID, entity.RoleSuperAdmin, &request.OrderUpdateRequest{
		PaymentStatus: &failed,
	})
	if err == nil || !strings.Contains(err.Error(), "invalid transition") {
		t.Errorf("expected invalid transition error, got %v", err)
	}
}

func TestSalesManagerUpdatesShipping(t *testing.T) {
	repo := newTestRepository()
	svc := NewOrderService(repo, testLogger())

	panelID := seedProduct(t, repo, "Panel", 100)
	order, err := svc.CreateOrder(context.Background(), 1, &request.OrderRequest{
		ShippingAddress: "addr",
		PaymentMethod:   "card",
		Items:           []request.OrderItemRequest{{ProductID: panelID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	shipped := "shipped"
	updated, err := svc.UpdateOrder(context.Background(), order.ID, entity.RoleSalesManager, &request.OrderUpdateRequest{
		ShippingStatus: &shipped,
	})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if updated.ShippingStatus != "shipped" {
		t.Errorf("expected shipped, got %s", updated.ShippingStatus)
	}
}
