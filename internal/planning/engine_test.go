package planning

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func findMaterial(t *testing.T, report *PlanReport, id string) MaterialRequirement {
	t.Helper()
	for _, m := range report.MaterialsSummary {
		if m.MaterialID == id {
			return m
		}
	}
	t.Fatalf("material %s not found in report", id)
	return MaterialRequirement{}
}

func findBottle(t *testing.T, report *PlanReport, id string) BottleRequirement {
	t.Helper()
	for _, b := range report.BottleSummary {
		if b.BottleTypeID == id {
			return b
		}
	}
	t.Fatalf("bottle type %s not found in report", id)
	return BottleRequirement{}
}

func TestCalculate_SingleItemScenario(t *testing.T) {
	engine := newTestEngine()

	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{
			{SellableProductID: "P1", Quantity: 20},
		},
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if len(report.Summary) != 1 {
		t.Fatalf("expected 1 summary line, got %d", len(report.Summary))
	}
	line := report.Summary[0]
	if !floatEq(line.VolumeLiters, 20.0) {
		t.Errorf("expected volume 20.0, got %v", line.VolumeLiters)
	}
	if line.TotalQuantity != 20 {
		t.Errorf("expected quantity 20, got %d", line.TotalQuantity)
	}

	// I1: 0.1/L × 20L = 2.0，库存1.5 → 不足，缺口0.5
	i1 := findMaterial(t, report, "I1")
	if !floatEq(i1.TotalQuantity, 2.0) {
		t.Errorf("expected I1 total 2.0, got %v", i1.TotalQuantity)
	}
	if i1.IsSufficient {
		t.Error("expected I1 to be insufficient")
	}
	if !floatEq(i1.ShortageQty, 0.5) {
		t.Errorf("expected I1 shortage 0.5, got %v", i1.ShortageQty)
	}
	if !floatEq(i1.TotalCost, 240.0) {
		t.Errorf("expected I1 cost 240.0, got %v", i1.TotalCost)
	}

	// I2: 0.95/L × 20L = 19，库存充足
	i2 := findMaterial(t, report, "I2")
	if !floatEq(i2.TotalQuantity, 19.0) {
		t.Errorf("expected I2 total 19.0, got %v", i2.TotalQuantity)
	}
	if !i2.IsSufficient {
		t.Error("expected I2 to be sufficient")
	}

	bt := findBottle(t, report, "BT1000")
	if bt.TotalQuantity != 20 {
		t.Errorf("expected 20 bottles, got %d", bt.TotalQuantity)
	}
	if !floatEq(bt.TotalCost, 100.0) {
		t.Errorf("expected bottle cost 100.0, got %v", bt.TotalCost)
	}
	if !bt.IsSufficient {
		t.Error("expected BT1000 to be sufficient")
	}

	// 成本拆解：原料240+0.38，瓶子100
	if !floatEq(line.TotalMaterialCost, 240.38) {
		t.Errorf("expected material cost 240.38, got %v", line.TotalMaterialCost)
	}
	if !floatEq(line.MaterialCostPerBottle, 12.02) {
		t.Errorf("expected material cost per bottle 12.02, got %v", line.MaterialCostPerBottle)
	}
	if !floatEq(line.BottleCostPerBottle, 5.0) {
		t.Errorf("expected bottle cost per bottle 5.0, got %v", line.BottleCostPerBottle)
	}
	if !floatEq(line.TotalCost, 340.38) {
		t.Errorf("expected total cost 340.38, got %v", line.TotalCost)
	}

	if report.Totals.TotalBottles != 20 {
		t.Errorf("expected totals 20 bottles, got %d", report.Totals.TotalBottles)
	}
	if !floatEq(report.Totals.TotalVolumeLiters, 20.0) {
		t.Errorf("expected totals volume 20.0, got %v", report.Totals.TotalVolumeLiters)
	}
}

func TestCalculate_BottleMerge(t *testing.T) {
	engine := newTestEngine()

	// P2/V250 和 P3 共用 BT250：5 + 7 = 12，只能有一条聚合行
	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{
			{SellableProductID: "P2", VariationID: "V250", Quantity: 5},
			{SellableProductID: "P3", Quantity: 7},
		},
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	count := 0
	for _, b := range report.BottleSummary {
		if b.BottleTypeID == "BT250" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one BT250 entry, got %d", count)
	}
	if bt := findBottle(t, report, "BT250"); bt.TotalQuantity != 12 {
		t.Errorf("expected BT250 total 12, got %d", bt.TotalQuantity)
	}
}

func TestCalculate_MaterialMergeAcrossBottleSizes(t *testing.T) {
	engine := newTestEngine()

	// 同一基础产品的两种瓶型：10×1L + 10×500ml = 15L，I1 = 1.5
	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{
			{SellableProductID: "P1", Quantity: 10},
			{SellableProductID: "P2", VariationID: "V500", Quantity: 10},
		},
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	count := 0
	for _, m := range report.MaterialsSummary {
		if m.MaterialID == "I1" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one I1 entry, got %d", count)
	}
	i1 := findMaterial(t, report, "I1")
	if !floatEq(i1.TotalQuantity, 1.5) {
		t.Errorf("expected I1 total 1.5, got %v", i1.TotalQuantity)
	}
}

func TestCalculate_OrderIndependence(t *testing.T) {
	engine := newTestEngine()

	items := []PlanningItem{
		{SellableProductID: "P1", Quantity: 3},
		{SellableProductID: "P2", VariationID: "V250", Quantity: 5},
		{SellableProductID: "P2", VariationID: "V500", Quantity: 7},
		{SellableProductID: "P3", Quantity: 2},
		{SellableProductID: "P1", Quantity: 4}, // 重复SKU，聚合阶段合并
	}

	base, err := engine.Calculate(context.Background(), PlanRequest{Items: items})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]PlanningItem, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got, err := engine.Calculate(context.Background(), PlanRequest{Items: shuffled})
		if err != nil {
			t.Fatalf("Calculate failed on trial %d: %v", trial, err)
		}
		if !reflect.DeepEqual(base.MaterialsSummary, got.MaterialsSummary) {
			t.Fatalf("materials summary differs under permutation (trial %d)", trial)
		}
		if !reflect.DeepEqual(base.BottleSummary, got.BottleSummary) {
			t.Fatalf("bottle summary differs under permutation (trial %d)", trial)
		}
		if !reflect.DeepEqual(base.Totals, got.Totals) {
			t.Fatalf("totals differ under permutation (trial %d)", trial)
		}
	}
}

func TestCalculate_Conservation(t *testing.T) {
	engine := newTestEngine()

	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{
			{SellableProductID: "P1", Quantity: 13},
			{SellableProductID: "P2", VariationID: "V250", Quantity: 29},
			{SellableProductID: "P3", Quantity: 11},
		},
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	var materialSum, bottleSum, volumeSum float64
	var bottleCount int
	for _, m := range report.MaterialsSummary {
		materialSum += m.TotalCost
	}
	for _, b := range report.BottleSummary {
		bottleSum += b.TotalCost
	}
	for _, line := range report.Summary {
		volumeSum += line.VolumeLiters
		bottleCount += line.TotalQuantity
	}

	if !floatEq(report.Totals.TotalMaterialCost, materialSum) {
		t.Errorf("total material cost %v != sum of lines %v", report.Totals.TotalMaterialCost, materialSum)
	}
	if !floatEq(report.Totals.TotalBottleCost, bottleSum) {
		t.Errorf("total bottle cost %v != sum of lines %v", report.Totals.TotalBottleCost, bottleSum)
	}
	if !floatEq(report.Totals.TotalCost, report.Totals.TotalMaterialCost+report.Totals.TotalBottleCost) {
		t.Errorf("total cost %v != material+bottle", report.Totals.TotalCost)
	}
	if !floatEq(report.Totals.TotalVolumeLiters, volumeSum) {
		t.Errorf("total volume %v != sum of lines %v", report.Totals.TotalVolumeLiters, volumeSum)
	}
	if report.Totals.TotalBottles != bottleCount {
		t.Errorf("total bottles %d != sum of lines %d", report.Totals.TotalBottles, bottleCount)
	}
}

func TestCalculate_SufficiencyBoundary(t *testing.T) {
	// I1 0.1/L，15瓶1L需要1.5，库存恰好1.5 → 相等判定为充足
	engine := newTestEngine()
	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{{SellableProductID: "P1", Quantity: 15}},
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	i1 := findMaterial(t, report, "I1")
	if !i1.IsSufficient {
		t.Error("expected sufficiency when total equals stock exactly")
	}
	if !floatEq(i1.ShortageQty, 0) {
		t.Errorf("expected zero shortage, got %v", i1.ShortageQty)
	}

	// 库存再少0.01 → 不足
	engine2 := newTestEngine()
	engine2.stocks.(*fakeStocks).ingredients["I1"] = IngredientStock{
		IngredientID: "I1", Name: "Orange Concentrate", Unit: "kg",
		CurrentStock: dec("1.49"), AveragePrice: dec("120"),
	}
	report2, err := engine2.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{{SellableProductID: "P1", Quantity: 15}},
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	i1 = findMaterial(t, report2, "I1")
	if i1.IsSufficient {
		t.Error("expected insufficiency when total exceeds stock by 0.01")
	}
	if !floatEq(i1.ShortageQty, 0.01) {
		t.Errorf("expected shortage 0.01, got %v", i1.ShortageQty)
	}
}

func TestCalculate_MissingRecipeDegradesGracefully(t *testing.T) {
	engine := newTestEngine()

	// P3的基础产品B2没有配方：瓶子需求照常产生，原料成本为零，且有提示
	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{{SellableProductID: "P3", Quantity: 10}},
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if len(report.Summary) != 1 {
		t.Fatalf("expected 1 summary line, got %d", len(report.Summary))
	}
	line := report.Summary[0]
	if !floatEq(line.MaterialCostPerBottle, 0) {
		t.Errorf("expected zero material cost per bottle, got %v", line.MaterialCostPerBottle)
	}
	if len(report.MaterialsSummary) != 0 {
		t.Errorf("expected no material requirements, got %d", len(report.MaterialsSummary))
	}
	if bt := findBottle(t, report, "BT250"); bt.TotalQuantity != 10 {
		t.Errorf("expected 10 bottles, got %d", bt.TotalQuantity)
	}

	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "P3") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected missing-recipe warning naming P3, got %v", report.Warnings)
	}
}

func TestCalculate_PartialSuccess(t *testing.T) {
	engine := newTestEngine()

	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{
			{SellableProductID: "P1", Quantity: 0},            // 数量非法
			{SellableProductID: "UNKNOWN", Quantity: 5},       // 查无产品
			{SellableProductID: "P2", Quantity: 5},            // 缺变体
			{SellableProductID: "P1", VariationID: "V250", Quantity: 5}, // SIMPLE不允许变体
			{SellableProductID: "P1", Quantity: 10},           // 唯一合法行
		},
	})
	if err != nil {
		t.Fatalf("expected partial success, got error: %v", err)
	}

	if len(report.Summary) != 1 {
		t.Fatalf("expected 1 summary line, got %d", len(report.Summary))
	}
	if len(report.ItemErrors) != 4 {
		t.Fatalf("expected 4 item errors, got %d: %v", len(report.ItemErrors), report.ItemErrors)
	}

	kinds := make(map[string]int)
	for _, e := range report.ItemErrors {
		kinds[e.Kind]++
	}
	for _, want := range []string{ErrKindInvalidQuantity, ErrKindProductNotFound, ErrKindVariationRequired, ErrKindVariationNotAllowed} {
		if kinds[want] != 1 {
			t.Errorf("expected one %s error, got %d", want, kinds[want])
		}
	}
}

func TestCalculate_MissingCapacityRejectsItemOnly(t *testing.T) {
	engine := newTestEngine()
	catalog := engine.catalog.(*fakeCatalog)
	catalog.products["P4"] = fakeProduct{
		Code: "P4", Name: "Broken SKU", Kind: KindSimple, BaseProductID: "B1", BottleTypeID: "BT0",
	}
	// BT0 不在瓶型表里，容量为零——数据完整性问题，必须拒绝该行而非按零体积计算

	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{
			{SellableProductID: "P4", Quantity: 5},
			{SellableProductID: "P1", Quantity: 10},
		},
	})
	if err != nil {
		t.Fatalf("expected partial success, got error: %v", err)
	}

	if len(report.ItemErrors) != 1 || report.ItemErrors[0].Kind != ErrKindMissingCapacity {
		t.Fatalf("expected one missing_capacity error, got %v", report.ItemErrors)
	}
	if len(report.Summary) != 1 || report.Summary[0].SellableProductID != "P1" {
		t.Fatalf("expected P1 to still be calculated, got %v", report.Summary)
	}
}

func TestCalculate_EmptyPlan(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{
			{SellableProductID: "P1", Quantity: 0},
			{SellableProductID: "P1", Quantity: -3},
		},
	})
	var emptyErr *EmptyPlanError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyPlanError, got %v", err)
	}
	if len(emptyErr.ItemErrors) != 2 {
		t.Errorf("expected 2 item errors, got %d", len(emptyErr.ItemErrors))
	}

	// 全部在解析阶段失败同样是空计划
	_, err = engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{{SellableProductID: "UNKNOWN", Quantity: 5}},
	})
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyPlanError, got %v", err)
	}
}

func TestCalculate_MissingStockRecordIsInsufficient(t *testing.T) {
	engine := newTestEngine()
	recipes := engine.recipes.(*fakeRecipes)
	recipes.lines["B1"] = append(recipes.lines["B1"], RecipeLine{
		IngredientID: "I9", QtyPerLiter: dec("0.01"), Unit: "kg",
	})
	// I9 没有库存记录：未知库存按零处理，判定不足

	report, err := engine.Calculate(context.Background(), PlanRequest{
		Items: []PlanningItem{{SellableProductID: "P1", Quantity: 10}},
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	i9 := findMaterial(t, report, "I9")
	if i9.IsSufficient {
		t.Error("expected unknown stock to be insufficient")
	}
	if !floatEq(i9.CurrentStock, 0) {
		t.Errorf("expected zero stock, got %v", i9.CurrentStock)
	}
	if !floatEq(i9.ShortageQty, 0.1) {
		t.Errorf("expected shortage 0.1, got %v", i9.ShortageQty)
	}
}
