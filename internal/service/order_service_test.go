package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
)

func TestGenerateOrderCode_Format(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	code := generateOrderCode(now)

	matched, err := regexp.MatchString(`^SO-20260315-\d{4}$`, code)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Fatalf("code = %q, want SO-20260315-XXXX", code)
	}
}

func TestOrderTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusConfirmed, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPending, entity.OrderStatusShipped, false},
		{entity.OrderStatusConfirmed, entity.OrderStatusShipped, true},
		{entity.OrderStatusConfirmed, entity.OrderStatusCompleted, false},
		{entity.OrderStatusShipped, entity.OrderStatusCompleted, true},
		{entity.OrderStatusShipped, entity.OrderStatusCancelled, false},
		{entity.OrderStatusCompleted, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusConfirmed, false},
	}

	for _, tc := range cases {
		allowed := false
		for _, next := range orderTransitions[tc.from] {
			if next == tc.to {
				allowed = true
				break
			}
		}
		if allowed != tc.allowed {
			t.Errorf("%s -> %s: allowed = %v, want %v", tc.from, tc.to, allowed, tc.allowed)
		}
	}
}
