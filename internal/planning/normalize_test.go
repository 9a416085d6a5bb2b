package planning

import (
	"testing"
)

func TestNormalize_RejectsNonPositiveQuantity(t *testing.T) {
	valid, errs := Normalize([]PlanningItem{
		{SellableProductID: "P1", Quantity: 10},
		{SellableProductID: "P2", Quantity: 0},
		{SellableProductID: "P3", Quantity: -5},
		{SellableProductID: "P4", Quantity: 1},
	})

	if len(valid) != 2 {
		t.Fatalf("expected 2 valid items, got %d", len(valid))
	}
	if valid[0].SellableProductID != "P1" || valid[0].Index != 0 {
		t.Errorf("unexpected first valid item: %+v", valid[0])
	}
	if valid[1].SellableProductID != "P4" || valid[1].Index != 3 {
		t.Errorf("unexpected second valid item: %+v", valid[1])
	}

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	for _, e := range errs {
		if e.Kind != ErrKindInvalidQuantity {
			t.Errorf("expected invalid_quantity, got %s", e.Kind)
		}
	}
	if errs[0].Index != 1 || errs[1].Index != 2 {
		t.Errorf("error indices should name the offending rows: %+v", errs)
	}
}

func TestNormalize_KeepsDuplicates(t *testing.T) {
	// 同一SKU出现两次是合法输入（订单来源行+手工行），合并交给聚合阶段
	valid, errs := Normalize([]PlanningItem{
		{SellableProductID: "P1", Quantity: 5},
		{SellableProductID: "P1", Quantity: 7},
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(valid) != 2 {
		t.Fatalf("expected duplicates to be kept, got %d items", len(valid))
	}
}
