package order

import (
	"context"
	"regexp"
	"testing"
)

func TestOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{10}$`)
	for i := 0; i < 20; i++ {
		if id := NewOrderID(); !pattern.MatchString(id) {
			t.Fatalf("bad order id: %q", id)
		}
	}
}

func TestPlaceAssignsIDAndAppends(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	id, err := service.Place(context.Background(), Order{
		Cart:       []any{"P1"},
		Quantities: map[string]int{"P1": 2},
		Store:      map[string]any{"name": "Store A"},
		PickupCode: "ABCD1234",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatalf("expected an order id")
	}

	orders, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || orders[0].OrderID != id {
		t.Fatalf("unexpected log contents: %+v", orders)
	}
}

func TestFileRepositoryAppendsAcrossInstances(t *testing.T) {
	path := t.TempDir() + "/orders.json"
	ctx := context.Background()

	first := NewFileRepository(path)
	if err := first.Append(ctx, Order{OrderID: "AAAAAAAAAA", PickupCode: "X1"}); err != nil {
		t.Fatal(err)
	}

	// A fresh instance must see the existing log and append to it.
	second := NewFileRepository(path)
	if err := second.Append(ctx, Order{OrderID: "BBBBBBBBBB", PickupCode: "X2"}); err != nil {
		t.Fatal(err)
	}

	orders, err := second.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].OrderID != "AAAAAAAAAA" || orders[1].OrderID != "BBBBBBBBBB" {
		t.Fatalf("append order not preserved: %+v", orders)
	}
}

func TestFileRepositoryListOnMissingFile(t *testing.T) {
	repo := NewFileRepository(t.TempDir() + "/orders.json")

	orders, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty log, got %+v", orders)
	}
}
