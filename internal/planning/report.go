package planning

import (
	"sort"

	"github.com/shopspring/decimal"
)

// assembleReport 组装最终报告。
// 金额只在这里舍入到2位；总计行由已舍入的明细相加，保证报告自洽
// （totals恒等于各自明细之和）。输出按键排序，相同输入产生逐字节相同的报告。
func assembleReport(
	agg *aggregation,
	ingredientStocks map[string]IngredientStock,
	bottleStocks map[string]BottleStock,
	warnings []string,
	itemErrors []ItemError,
) *PlanReport {
	report := &PlanReport{
		Summary:          make([]ProductCostLine, 0, len(agg.products)),
		MaterialsSummary: make([]MaterialRequirement, 0, len(agg.materials)),
		BottleSummary:    make([]BottleRequirement, 0, len(agg.bottles)),
		Warnings:         warnings,
		ItemErrors:       itemErrors,
	}

	// SKU成本拆解
	for _, prod := range agg.products {
		report.Summary = append(report.Summary, buildProductLine(prod, ingredientStocks, bottleStocks))
	}
	sort.Slice(report.Summary, func(i, j int) bool {
		a, b := report.Summary[i], report.Summary[j]
		if a.SellableProductCode != b.SellableProductCode {
			return a.SellableProductCode < b.SellableProductCode
		}
		return a.VariationID < b.VariationID
	})

	// 原料汇总
	for _, mat := range agg.materials {
		stock, found := ingredientStocks[mat.IngredientID]
		report.MaterialsSummary = append(report.MaterialsSummary, evaluateMaterial(mat, stock, found))
	}
	sort.Slice(report.MaterialsSummary, func(i, j int) bool {
		return report.MaterialsSummary[i].MaterialID < report.MaterialsSummary[j].MaterialID
	})

	// 瓶型汇总
	for _, bot := range agg.bottles {
		stock, found := bottleStocks[bot.BottleTypeID]
		report.BottleSummary = append(report.BottleSummary, evaluateBottle(bot, stock, found))
	}
	sort.Slice(report.BottleSummary, func(i, j int) bool {
		return report.BottleSummary[i].BottleTypeID < report.BottleSummary[j].BottleTypeID
	})

	// 总计 = 明细之和
	volume := decimal.Zero
	materialCost := decimal.Zero
	bottleCost := decimal.Zero
	for _, line := range report.Summary {
		report.Totals.TotalBottles += line.TotalQuantity
		volume = volume.Add(decimal.NewFromFloat(line.VolumeLiters))
	}
	for _, mat := range report.MaterialsSummary {
		materialCost = materialCost.Add(decimal.NewFromFloat(mat.TotalCost))
	}
	for _, bot := range report.BottleSummary {
		bottleCost = bottleCost.Add(decimal.NewFromFloat(bot.TotalCost))
	}
	report.Totals.TotalVolumeLiters = volume.Round(4).InexactFloat64()
	report.Totals.TotalMaterialCost = materialCost.Round(2).InexactFloat64()
	report.Totals.TotalBottleCost = bottleCost.Round(2).InexactFloat64()
	report.Totals.TotalCost = materialCost.Add(bottleCost).Round(2).InexactFloat64()

	return report
}

// buildProductLine 计算单个SKU的成本行。配方缺失时原料成本为零，
// 行仍然输出——零成本是有效信息，不是错误。
func buildProductLine(
	prod *productAgg,
	ingredientStocks map[string]IngredientStock,
	bottleStocks map[string]BottleStock,
) ProductCostLine {
	qty := decimal.NewFromInt(prod.Quantity)

	matCost := decimal.Zero
	for ingredientID, need := range prod.IngredientQty {
		if stock, ok := ingredientStocks[ingredientID]; ok {
			matCost = matCost.Add(need.Mul(stock.AveragePrice))
		}
	}

	unitPrice := decimal.Zero
	if stock, ok := bottleStocks[prod.Info.BottleTypeID]; ok {
		unitPrice = stock.UnitPrice
	}
	botCost := qty.Mul(unitPrice)

	matPerBottle := decimal.Zero
	if prod.Quantity > 0 {
		matPerBottle = matCost.Div(qty)
	}

	line := ProductCostLine{
		SellableProductID:     prod.Key.SellableProductID,
		VariationID:           prod.Key.VariationID,
		SellableProductCode:   prod.Info.ProductCode,
		SellableProductName:   prod.Info.ProductName,
		BottleSize:            prod.Info.BottleSize,
		CapacityML:            prod.Info.CapacityML,
		TotalQuantity:         int(prod.Quantity),
		VolumeLiters:          prod.Volume.Round(4).InexactFloat64(),
		MaterialCostPerBottle: matPerBottle.Round(2).InexactFloat64(),
		BottleCostPerBottle:   unitPrice.Round(2).InexactFloat64(),
		TotalMaterialCost:     matCost.Round(2).InexactFloat64(),
		TotalBottleCost:       botCost.Round(2).InexactFloat64(),
	}
	line.TotalCostPerBottle = decimal.NewFromFloat(line.MaterialCostPerBottle).
		Add(decimal.NewFromFloat(line.BottleCostPerBottle)).InexactFloat64()
	line.TotalCost = decimal.NewFromFloat(line.TotalMaterialCost).
		Add(decimal.NewFromFloat(line.TotalBottleCost)).InexactFloat64()

	return line
}
