package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"confirmed", OrderStatusConfirmed, "confirmed"},
		{"preparing", OrderStatusPreparing, "preparing"},
		{"out for delivery", OrderStatusOutForDelivery, "out_for_delivery"},
		{"delivered", OrderStatusDelivered, "delivered"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "preparing", "out_for_delivery", "delivered"} {
		status, ok := ParseOrderStatus(valid)
		if !ok || string(status) != valid {
			t.Fatalf("expected %s to parse, got %q ok=%v", valid, status, ok)
		}
	}

	for _, invalid := range []string{"", "shipped", "PENDING", "outfordelivery"} {
		if _, ok := ParseOrderStatus(invalid); ok {
			t.Fatalf("expected %q to be rejected", invalid)
		}
	}
}

func TestOrderSnapshotTotal(t *testing.T) {
	order := Order{CartItems: []CartItem{
		{Name: "Pizza", UnitPrice: 200, Quantity: 2},
		{Name: "Coke", UnitPrice: 50, Quantity: 1},
	}}
	if got := order.SnapshotTotal(); got != 450 {
		t.Fatalf("expected 450, got %d", got)
	}

	empty := Order{}
	if got := empty.SnapshotTotal(); got != 0 {
		t.Fatalf("expected 0 for empty cart, got %d", got)
	}
}
