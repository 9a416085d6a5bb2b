package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kwamkid/joolz-factory-sub003/internal/planning"
	"github.com/xuri/excelize/v2"
)

var planSummaryHeaders = []string{
	"产品编码", "产品名称", "瓶型", "容量(ml)", "数量(瓶)", "产量(升)",
	"单瓶物料成本", "单瓶包材成本", "单瓶总成本", "物料成本小计", "包材成本小计", "成本小计",
}

var planMaterialHeaders = []string{
	"原料", "单位", "需求量", "平均单价", "成本", "当前库存", "是否充足", "缺口",
}

var planBottleHeaders = []string{
	"瓶型", "容量(ml)", "需求量(瓶)", "单价", "成本", "当前库存", "是否充足", "缺口",
}

// ExportPlan 把计算报告导出为xlsx：汇总、原料需求、瓶型需求三个sheet
func (s *PlanningService) ExportPlan(ctx context.Context, req planning.PlanRequest) (*excelize.File, string, error) {
	report, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	writeHeaders := func(sheet string, headers []string) {
		for i, h := range headers {
			col, _ := excelize.ColumnNumberToName(i + 1)
			cell := col + "1"
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, boldStyle)
		}
	}

	// Sheet 1: 生产汇总
	summarySheet := "生产汇总"
	f.SetSheetName("Sheet1", summarySheet)
	writeHeaders(summarySheet, planSummaryHeaders)
	for rowIdx, line := range report.Summary {
		row := rowIdx + 2
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), line.SellableProductCode)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), line.SellableProductName)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), line.BottleSize)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), line.CapacityML)
		f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), line.TotalQuantity)
		f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), line.VolumeLiters)
		f.SetCellValue(summarySheet, fmt.Sprintf("G%d", row), line.MaterialCostPerBottle)
		f.SetCellValue(summarySheet, fmt.Sprintf("H%d", row), line.BottleCostPerBottle)
		f.SetCellValue(summarySheet, fmt.Sprintf("I%d", row), line.TotalCostPerBottle)
		f.SetCellValue(summarySheet, fmt.Sprintf("J%d", row), line.TotalMaterialCost)
		f.SetCellValue(summarySheet, fmt.Sprintf("K%d", row), line.TotalBottleCost)
		f.SetCellValue(summarySheet, fmt.Sprintf("L%d", row), line.TotalCost)
	}
	totalRow := len(report.Summary) + 2
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", totalRow), "合计")
	f.SetCellValue(summarySheet, fmt.Sprintf("E%d", totalRow), report.Totals.TotalBottles)
	f.SetCellValue(summarySheet, fmt.Sprintf("F%d", totalRow), report.Totals.TotalVolumeLiters)
	f.SetCellValue(summarySheet, fmt.Sprintf("J%d", totalRow), report.Totals.TotalMaterialCost)
	f.SetCellValue(summarySheet, fmt.Sprintf("K%d", totalRow), report.Totals.TotalBottleCost)
	f.SetCellValue(summarySheet, fmt.Sprintf("L%d", totalRow), report.Totals.TotalCost)
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("L%d", totalRow), summaryStyle)
	summaryWidths := []float64{14, 24, 10, 10, 10, 10, 12, 12, 12, 12, 12, 12}
	for i, w := range summaryWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(summarySheet, col, col, w)
	}

	// Sheet 2: 原料需求
	materialSheet := "原料需求"
	f.NewSheet(materialSheet)
	writeHeaders(materialSheet, planMaterialHeaders)
	for rowIdx, mat := range report.MaterialsSummary {
		row := rowIdx + 2
		sufficient := "是"
		if !mat.IsSufficient {
			sufficient = "否"
		}
		f.SetCellValue(materialSheet, fmt.Sprintf("A%d", row), mat.MaterialName)
		f.SetCellValue(materialSheet, fmt.Sprintf("B%d", row), mat.Unit)
		f.SetCellValue(materialSheet, fmt.Sprintf("C%d", row), mat.TotalQuantity)
		f.SetCellValue(materialSheet, fmt.Sprintf("D%d", row), mat.AveragePrice)
		f.SetCellValue(materialSheet, fmt.Sprintf("E%d", row), mat.TotalCost)
		f.SetCellValue(materialSheet, fmt.Sprintf("F%d", row), mat.CurrentStock)
		f.SetCellValue(materialSheet, fmt.Sprintf("G%d", row), sufficient)
		f.SetCellValue(materialSheet, fmt.Sprintf("H%d", row), mat.ShortageQty)
	}

	// Sheet 3: 瓶型需求
	bottleSheet := "瓶型需求"
	f.NewSheet(bottleSheet)
	writeHeaders(bottleSheet, planBottleHeaders)
	for rowIdx, bot := range report.BottleSummary {
		row := rowIdx + 2
		sufficient := "是"
		if !bot.IsSufficient {
			sufficient = "否"
		}
		f.SetCellValue(bottleSheet, fmt.Sprintf("A%d", row), bot.BottleSize)
		f.SetCellValue(bottleSheet, fmt.Sprintf("B%d", row), bot.CapacityML)
		f.SetCellValue(bottleSheet, fmt.Sprintf("C%d", row), bot.TotalQuantity)
		f.SetCellValue(bottleSheet, fmt.Sprintf("D%d", row), bot.Price)
		f.SetCellValue(bottleSheet, fmt.Sprintf("E%d", row), bot.TotalCost)
		f.SetCellValue(bottleSheet, fmt.Sprintf("F%d", row), bot.CurrentStock)
		f.SetCellValue(bottleSheet, fmt.Sprintf("G%d", row), sufficient)
		f.SetCellValue(bottleSheet, fmt.Sprintf("H%d", row), bot.ShortageQty)
	}

	filename := fmt.Sprintf("ProductionPlan_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}
