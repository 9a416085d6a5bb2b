package planning

import (
	"github.com/shopspring/decimal"
)

// evaluateMaterial 将一个原料的聚合需求与库存快照比对。
// 查不到库存记录按零库存处理并判定不足——未知库存不能当作够用。
// 相等判定为充足（total <= stock）。
func evaluateMaterial(mat *materialAgg, stock IngredientStock, found bool) MaterialRequirement {
	req := MaterialRequirement{
		MaterialID:    mat.IngredientID,
		Unit:          mat.Unit,
		TotalQuantity: mat.Total.Round(4).InexactFloat64(),
	}

	currentStock := decimal.Zero
	avgPrice := decimal.Zero
	if found {
		req.MaterialName = stock.Name
		if stock.Unit != "" {
			req.Unit = stock.Unit
		}
		currentStock = stock.CurrentStock
		avgPrice = stock.AveragePrice
	}

	req.AveragePrice = avgPrice.Round(2).InexactFloat64()
	req.TotalCost = mat.Total.Mul(avgPrice).Round(2).InexactFloat64()
	req.CurrentStock = currentStock.Round(4).InexactFloat64()
	req.IsSufficient = found && mat.Total.Cmp(currentStock) <= 0
	if !req.IsSufficient {
		req.ShortageQty = mat.Total.Sub(currentStock).Round(4).InexactFloat64()
	}

	return req
}

// evaluateBottle 瓶型版本的库存比对，规则与原料一致
func evaluateBottle(bot *bottleAgg, stock BottleStock, found bool) BottleRequirement {
	req := BottleRequirement{
		BottleTypeID:  bot.BottleTypeID,
		BottleSize:    bot.SizeLabel,
		CapacityML:    bot.CapacityML,
		TotalQuantity: int(bot.Quantity),
	}

	total := decimal.NewFromInt(bot.Quantity)
	currentStock := decimal.Zero
	unitPrice := decimal.Zero
	if found {
		if stock.SizeLabel != "" {
			req.BottleSize = stock.SizeLabel
		}
		currentStock = stock.CurrentStock
		unitPrice = stock.UnitPrice
	}

	req.Price = unitPrice.Round(2).InexactFloat64()
	req.TotalCost = total.Mul(unitPrice).Round(2).InexactFloat64()
	req.CurrentStock = currentStock.Round(4).InexactFloat64()
	req.IsSufficient = found && total.Cmp(currentStock) <= 0
	if !req.IsSufficient {
		req.ShortageQty = total.Sub(currentStock).Round(4).InexactFloat64()
	}

	return req
}
