package cart

import (
	"encoding/json"
	"testing"
)

func TestAddMergesSameProduct(t *testing.T) {
	c := New()
	c.Add(Item{ProductID: 7, Name: "400W Panel", Price: 299.99, Quantity: 2})
	c.Add(Item{ProductID: 7, Name: "400W Panel", Price: 299.99, Quantity: 3})

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}

	items := c.Items()
	if items[0].Quantity != 5 {
		t.Errorf("expected merged quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Add(Item{ProductID: 3, Name: "Inverter", Price: 850, Quantity: 1})
	c.Add(Item{ProductID: 1, Name: "Panel", Price: 300, Quantity: 1})
	c.Add(Item{ProductID: 3, Name: "Inverter", Price: 850, Quantity: 2})

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != 3 || items[1].ProductID != 1 {
		t.Errorf("unexpected order: %v", items)
	}
	if items[0].Quantity != 3 {
		t.Errorf("expected first line quantity 3, got %d", items[0].Quantity)
	}
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.Add(Item{ProductID: 7, Price: 100, Quantity: 2})

	c.SetQuantity(7, 3)
	if got := c.Items()[0].Quantity; got != 3 {
		t.Errorf("expected quantity 3, got %d", got)
	}

	// Zero removes the line
	c.SetQuantity(7, 0)
	if c.Len() != 0 {
		t.Errorf("expected empty cart, got %d lines", c.Len())
	}
}

func TestSetQuantityUnknownProductIsNoop(t *testing.T) {
	c := New()
	c.Add(Item{ProductID: 1, Price: 100, Quantity: 1})

	c.SetQuantity(99, 5)
	if c.Len() != 1 {
		t.Errorf("expected 1 line, got %d", c.Len())
	}
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.Add(Item{ProductID: 1, Price: 100, Quantity: 1})
	c.Add(Item{ProductID: 2, Price: 200, Quantity: 1})

	c.Remove(1)
	if c.Len() != 1 || c.Items()[0].ProductID != 2 {
		t.Errorf("unexpected cart after remove: %v", c.Items())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cart after clear, got %d lines", c.Len())
	}
}

func TestTotal(t *testing.T) {
	c := New()
	if c.Total() != 0 {
		t.Errorf("expected zero total for empty cart, got %f", c.Total())
	}

	c.Add(Item{ProductID: 1, Price: 299.99, Quantity: 2})
	c.Add(Item{ProductID: 2, Price: 850, Quantity: 1})

	want := 299.99*2 + 850
	if got := c.Total(); got != want {
		t.Errorf("expected total %f, got %f", want, got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := New()
	c.Add(Item{ProductID: 7, Name: "400W Panel", Price: 299.99, ImageURL: "/uploads/products/p.jpg", Quantity: 2})
	c.Add(Item{ProductID: 9, Name: "Battery", Price: 1200, Quantity: 1})

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := New()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", restored.Len())
	}
	if restored.Total() != c.Total() {
		t.Errorf("totals differ: %f vs %f", restored.Total(), c.Total())
	}
}

func TestUnmarshalMergesDuplicateLines(t *testing.T) {
	raw := `[{"productId":7,"price":100,"quantity":2},{"productId":7,"price":100,"quantity":3}]`

	c := New()
	if err := json.Unmarshal([]byte(raw), c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if c.Len() != 1 {
		t.Fatalf("expected duplicates merged into 1 line, got %d", c.Len())
	}
	if got := c.Items()[0].Quantity; got != 5 {
		t.Errorf("expected quantity 5, got %d", got)
	}
}

func TestEmptyCartMarshalsAsArray(t *testing.T) {
	data, err := json.Marshal(New())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %s", data)
	}
}
