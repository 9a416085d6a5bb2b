package planning

import (
	"context"

	"github.com/shopspring/decimal"
)

// fakeVariation 测试用变体数据
type fakeVariation struct {
	BottleTypeID string
}

// fakeProduct 测试用目录数据，模拟SIMPLE/VARIATION两种形态
type fakeProduct struct {
	Code          string
	Name          string
	Kind          string
	BaseProductID string
	BottleTypeID  string
	Variations    map[string]fakeVariation
}

// fakeCatalog 内存目录解析器，解析规则与真实适配器一致
type fakeCatalog struct {
	products map[string]fakeProduct
	bottles  map[string]BottleStock
}

func (f *fakeCatalog) ResolveProduct(_ context.Context, sellableProductID, variationID string) (*CatalogInfo, error) {
	prod, ok := f.products[sellableProductID]
	if !ok {
		return nil, ErrProductNotFound
	}

	info := &CatalogInfo{
		SellableProductID: sellableProductID,
		VariationID:       variationID,
		ProductCode:       prod.Code,
		ProductName:       prod.Name,
		Kind:              prod.Kind,
		BaseProductID:     prod.BaseProductID,
	}

	switch prod.Kind {
	case KindVariation:
		if variationID == "" {
			return nil, ErrVariationRequired
		}
		v, ok := prod.Variations[variationID]
		if !ok {
			return nil, ErrVariationNotFound
		}
		info.BottleTypeID = v.BottleTypeID
	default:
		if variationID != "" {
			return nil, ErrVariationNotAllowed
		}
		info.BottleTypeID = prod.BottleTypeID
	}

	if bottle, ok := f.bottles[info.BottleTypeID]; ok {
		info.BottleSize = bottle.SizeLabel
		info.CapacityML = bottle.CapacityML
	}
	return info, nil
}

// fakeRecipes 内存配方解析器
type fakeRecipes struct {
	lines map[string][]RecipeLine
}

func (f *fakeRecipes) RecipeLines(_ context.Context, baseProductID string) ([]RecipeLine, error) {
	return f.lines[baseProductID], nil
}

// fakeStocks 内存库存解析器
type fakeStocks struct {
	ingredients map[string]IngredientStock
	bottles     map[string]BottleStock
}

func (f *fakeStocks) IngredientStocks(_ context.Context, ids []string) (map[string]IngredientStock, error) {
	out := make(map[string]IngredientStock)
	for _, id := range ids {
		if s, ok := f.ingredients[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (f *fakeStocks) BottleStocks(_ context.Context, ids []string) (map[string]BottleStock, error) {
	out := make(map[string]BottleStock)
	for _, id := range ids {
		if s, ok := f.bottles[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// newTestEngine 组装一套标准测试数据：
//   - P1: SIMPLE，基础产品B1，瓶型BT1000(1000ml)，配方 I1 0.1/L
//   - P2: VARIATION，基础产品B1，变体 V250→BT250(250ml)、V500→BT500(500ml)
//   - P3: SIMPLE，基础产品B2（无配方），瓶型BT250
func newTestEngine() *Engine {
	bottles := map[string]BottleStock{
		"BT1000": {BottleTypeID: "BT1000", SizeLabel: "1L", CapacityML: 1000, CurrentStock: dec("100"), UnitPrice: dec("5")},
		"BT500":  {BottleTypeID: "BT500", SizeLabel: "500ml", CapacityML: 500, CurrentStock: dec("200"), UnitPrice: dec("3.5")},
		"BT250":  {BottleTypeID: "BT250", SizeLabel: "250ml", CapacityML: 250, CurrentStock: dec("50"), UnitPrice: dec("2")},
	}

	catalog := &fakeCatalog{
		products: map[string]fakeProduct{
			"P1": {Code: "P1", Name: "Orange Juice 1L", Kind: KindSimple, BaseProductID: "B1", BottleTypeID: "BT1000"},
			"P2": {Code: "P2", Name: "Orange Juice", Kind: KindVariation, BaseProductID: "B1", Variations: map[string]fakeVariation{
				"V250": {BottleTypeID: "BT250"},
				"V500": {BottleTypeID: "BT500"},
			}},
			"P3": {Code: "P3", Name: "Premixed Lemonade", Kind: KindSimple, BaseProductID: "B2", BottleTypeID: "BT250"},
		},
		bottles: bottles,
	}

	recipes := &fakeRecipes{
		lines: map[string][]RecipeLine{
			"B1": {
				{IngredientID: "I1", QtyPerLiter: dec("0.1"), Unit: "kg"},
				{IngredientID: "I2", QtyPerLiter: dec("0.95"), Unit: "L"},
			},
		},
	}

	stocks := &fakeStocks{
		ingredients: map[string]IngredientStock{
			"I1": {IngredientID: "I1", Name: "Orange Concentrate", Unit: "kg", CurrentStock: dec("1.5"), AveragePrice: dec("120")},
			"I2": {IngredientID: "I2", Name: "Filtered Water", Unit: "L", CurrentStock: dec("10000"), AveragePrice: dec("0.02")},
		},
		bottles: bottles,
	}

	return NewEngine(catalog, recipes, stocks)
}
