package planning

import (
	"github.com/shopspring/decimal"
)

type productKey struct {
	SellableProductID string
	VariationID       string
}

// materialAgg 原料需求汇总（键：ingredient_id）
type materialAgg struct {
	IngredientID string
	Unit         string
	Total        decimal.Decimal
}

// bottleAgg 瓶型需求汇总（键：bottle_type_id）。
// 规格标签/容量取自目录事实，库存快照缺失时仍可展示。
type bottleAgg struct {
	BottleTypeID string
	SizeLabel    string
	CapacityML   float64
	Quantity     int64
}

// productAgg SKU级汇总，保留每个SKU贡献的原料量用于成本拆解
type productAgg struct {
	Key           productKey
	Info          CatalogInfo
	Quantity      int64
	Volume        decimal.Decimal
	IngredientQty map[string]decimal.Decimal
	MissingRecipe bool
}

type aggregation struct {
	materials map[string]*materialAgg
	bottles   map[string]*bottleAgg
	products  map[productKey]*productAgg
}

// aggregate 合并所有展开片段。求和从零累计、可交换可结合，
// 输入顺序不影响结果。
func aggregate(items []explodedItem) *aggregation {
	agg := &aggregation{
		materials: make(map[string]*materialAgg),
		bottles:   make(map[string]*bottleAgg),
		products:  make(map[productKey]*productAgg),
	}

	for _, ex := range items {
		key := productKey{
			SellableProductID: ex.Item.SellableProductID,
			VariationID:       ex.Item.VariationID,
		}

		prod, ok := agg.products[key]
		if !ok {
			prod = &productAgg{
				Key:           key,
				Info:          ex.Item.CatalogInfo,
				Volume:        decimal.Zero,
				IngredientQty: make(map[string]decimal.Decimal),
			}
			agg.products[key] = prod
		}
		prod.Quantity += int64(ex.Item.Quantity)
		prod.Volume = prod.Volume.Add(ex.VolumeLiters)
		if ex.MissingRecipe {
			prod.MissingRecipe = true
		}

		for _, need := range ex.Ingredients {
			mat, ok := agg.materials[need.IngredientID]
			if !ok {
				mat = &materialAgg{
					IngredientID: need.IngredientID,
					Unit:         need.Unit,
					Total:        decimal.Zero,
				}
				agg.materials[need.IngredientID] = mat
			}
			mat.Total = mat.Total.Add(need.Quantity)

			prev, ok := prod.IngredientQty[need.IngredientID]
			if !ok {
				prev = decimal.Zero
			}
			prod.IngredientQty[need.IngredientID] = prev.Add(need.Quantity)
		}

		bot, ok := agg.bottles[ex.Item.BottleTypeID]
		if !ok {
			bot = &bottleAgg{
				BottleTypeID: ex.Item.BottleTypeID,
				SizeLabel:    ex.Item.BottleSize,
				CapacityML:   ex.Item.CapacityML,
			}
			agg.bottles[ex.Item.BottleTypeID] = bot
		}
		bot.Quantity += int64(ex.Item.Quantity)
	}

	return agg
}

// ingredientIDs 聚合后出现过的原料键集合
func (a *aggregation) ingredientIDs() []string {
	ids := make([]string, 0, len(a.materials))
	for id := range a.materials {
		ids = append(ids, id)
	}
	return ids
}

// bottleTypeIDs 聚合后出现过的瓶型键集合
func (a *aggregation) bottleTypeIDs() []string {
	ids := make([]string, 0, len(a.bottles))
	for id := range a.bottles {
		ids = append(ids, id)
	}
	return ids
}
