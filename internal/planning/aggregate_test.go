package planning

import (
	"testing"
)

func TestAggregate_MergesByKey(t *testing.T) {
	recipe := []RecipeLine{{IngredientID: "I1", QtyPerLiter: dec("0.1"), Unit: "kg"}}

	a := explode(ResolvedItem{
		CatalogInfo: CatalogInfo{SellableProductID: "P1", BaseProductID: "B1", BottleTypeID: "BT1000", CapacityML: 1000},
		Quantity:    10,
	}, recipe)
	b := explode(ResolvedItem{
		CatalogInfo: CatalogInfo{SellableProductID: "P2", VariationID: "V500", BaseProductID: "B1", BottleTypeID: "BT500", CapacityML: 500},
		Quantity:    10,
	}, recipe)

	agg := aggregate([]explodedItem{a, b})

	// 两个SKU共享I1：1.0 + 0.5 = 1.5，单键单条
	if len(agg.materials) != 1 {
		t.Fatalf("expected 1 material key, got %d", len(agg.materials))
	}
	if !agg.materials["I1"].Total.Equal(dec("1.5")) {
		t.Errorf("expected I1 total 1.5, got %s", agg.materials["I1"].Total)
	}

	// 瓶型不同，各自一条
	if len(agg.bottles) != 2 {
		t.Fatalf("expected 2 bottle keys, got %d", len(agg.bottles))
	}
	if agg.bottles["BT1000"].Quantity != 10 || agg.bottles["BT500"].Quantity != 10 {
		t.Errorf("unexpected bottle quantities: %+v", agg.bottles)
	}
}

func TestAggregate_DuplicateProductRows(t *testing.T) {
	recipe := []RecipeLine{{IngredientID: "I1", QtyPerLiter: dec("0.2"), Unit: "kg"}}
	item := ResolvedItem{
		CatalogInfo: CatalogInfo{SellableProductID: "P1", BaseProductID: "B1", BottleTypeID: "BT250", CapacityML: 250},
	}

	item.Quantity = 5
	a := explode(item, recipe)
	item.Quantity = 7
	b := explode(item, recipe)

	agg := aggregate([]explodedItem{a, b})

	if len(agg.products) != 1 {
		t.Fatalf("expected duplicate rows to merge into one product, got %d", len(agg.products))
	}
	prod := agg.products[productKey{SellableProductID: "P1"}]
	if prod.Quantity != 12 {
		t.Errorf("expected merged quantity 12, got %d", prod.Quantity)
	}
	if !prod.Volume.Equal(dec("3")) {
		t.Errorf("expected merged volume 3.0L, got %s", prod.Volume)
	}
	if agg.bottles["BT250"].Quantity != 12 {
		t.Errorf("expected 12 bottles, got %d", agg.bottles["BT250"].Quantity)
	}
}

func TestAggregate_OrderIndependence(t *testing.T) {
	recipe := []RecipeLine{{IngredientID: "I1", QtyPerLiter: dec("0.3"), Unit: "kg"}}
	items := []explodedItem{
		explode(ResolvedItem{CatalogInfo: CatalogInfo{SellableProductID: "P1", BaseProductID: "B1", BottleTypeID: "BT1", CapacityML: 1000}, Quantity: 3}, recipe),
		explode(ResolvedItem{CatalogInfo: CatalogInfo{SellableProductID: "P2", BaseProductID: "B1", BottleTypeID: "BT1", CapacityML: 500}, Quantity: 5}, recipe),
		explode(ResolvedItem{CatalogInfo: CatalogInfo{SellableProductID: "P1", BaseProductID: "B1", BottleTypeID: "BT1", CapacityML: 1000}, Quantity: 2}, recipe),
	}
	reversed := []explodedItem{items[2], items[1], items[0]}

	a := aggregate(items)
	b := aggregate(reversed)

	if !a.materials["I1"].Total.Equal(b.materials["I1"].Total) {
		t.Errorf("material totals differ by order: %s vs %s", a.materials["I1"].Total, b.materials["I1"].Total)
	}
	if a.bottles["BT1"].Quantity != b.bottles["BT1"].Quantity {
		t.Errorf("bottle totals differ by order")
	}
}
