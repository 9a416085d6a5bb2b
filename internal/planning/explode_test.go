package planning

import (
	"testing"
)

func testResolvedItem(capacityML float64, qty int) ResolvedItem {
	return ResolvedItem{
		CatalogInfo: CatalogInfo{
			SellableProductID: "P1",
			BaseProductID:     "B1",
			BottleTypeID:      "BT1",
			CapacityML:        capacityML,
		},
		Quantity: qty,
	}
}

func TestExplode_VolumeCorrectness(t *testing.T) {
	// 500ml × 10瓶 = 5.0L
	ex := explode(testResolvedItem(500, 10), nil)
	if !ex.VolumeLiters.Equal(dec("5")) {
		t.Errorf("expected 5.0L, got %s", ex.VolumeLiters)
	}
}

func TestExplode_IngredientQuantities(t *testing.T) {
	recipe := []RecipeLine{
		{IngredientID: "I1", QtyPerLiter: dec("0.1"), Unit: "kg"},
		{IngredientID: "I2", QtyPerLiter: dec("0.95"), Unit: "L"},
	}

	ex := explode(testResolvedItem(1000, 20), recipe)
	if ex.MissingRecipe {
		t.Fatal("unexpected missing recipe flag")
	}
	if len(ex.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredient needs, got %d", len(ex.Ingredients))
	}
	if !ex.Ingredients[0].Quantity.Equal(dec("2")) {
		t.Errorf("expected I1 quantity 2.0, got %s", ex.Ingredients[0].Quantity)
	}
	if !ex.Ingredients[1].Quantity.Equal(dec("19")) {
		t.Errorf("expected I2 quantity 19.0, got %s", ex.Ingredients[1].Quantity)
	}
}

func TestExplode_MissingRecipe(t *testing.T) {
	ex := explode(testResolvedItem(250, 4), nil)
	if !ex.MissingRecipe {
		t.Error("expected missing recipe flag")
	}
	if len(ex.Ingredients) != 0 {
		t.Errorf("expected no ingredient needs, got %d", len(ex.Ingredients))
	}
	if !ex.VolumeLiters.Equal(dec("1")) {
		t.Errorf("expected 1.0L, got %s", ex.VolumeLiters)
	}
}
