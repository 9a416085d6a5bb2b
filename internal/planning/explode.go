package planning

import (
	"github.com/shopspring/decimal"
)

var mlPerLiter = decimal.NewFromInt(1000)

// ingredientNeed 单行展开产生的一条原料需求片段
type ingredientNeed struct {
	IngredientID string
	Unit         string
	Quantity     decimal.Decimal
}

// explodedItem 单行计划的BOM展开结果
type explodedItem struct {
	Item          ResolvedItem
	VolumeLiters  decimal.Decimal
	Ingredients   []ingredientNeed
	MissingRecipe bool
}

// explode 将一行已解析的计划展开为液体体积和原料需求。
// 体积按行计算：capacity_ml / 1000 * quantity，精度在求和之前保留在行级。
// 配方为空不视为失败：瓶子需求照常产生，原料成本为零（预混采购品的合法形态）。
func explode(item ResolvedItem, recipe []RecipeLine) explodedItem {
	qty := decimal.NewFromInt(int64(item.Quantity))
	volume := decimal.NewFromFloat(item.CapacityML).Div(mlPerLiter).Mul(qty)

	out := explodedItem{
		Item:         item,
		VolumeLiters: volume,
	}

	if len(recipe) == 0 {
		out.MissingRecipe = true
		return out
	}

	out.Ingredients = make([]ingredientNeed, 0, len(recipe))
	for _, line := range recipe {
		out.Ingredients = append(out.Ingredients, ingredientNeed{
			IngredientID: line.IngredientID,
			Unit:         line.Unit,
			Quantity:     line.QtyPerLiter.Mul(volume),
		})
	}

	return out
}
