package planning

import (
	"github.com/shopspring/decimal"
)

// ProductKind 与目录层一致的产品类型标记
const (
	KindSimple    = "SIMPLE"
	KindVariation = "VARIATION"
)

// PlanningItem 一行生产计划请求：某个SKU要生产多少瓶
type PlanningItem struct {
	SellableProductID string `json:"sellable_product_id" binding:"required"`
	VariationID       string `json:"variation_id"`
	Quantity          int    `json:"quantity"`
}

// PlanRequest 生产计划计算请求
type PlanRequest struct {
	Items []PlanningItem `json:"items"`
}

// CatalogInfo 目录解析结果。SIMPLE/VARIATION的差异在目录边界消化，
// 引擎内部只处理这一种展平后的形状。
type CatalogInfo struct {
	SellableProductID string
	VariationID       string
	ProductCode       string
	ProductName       string
	Kind              string
	BaseProductID     string
	BottleTypeID      string
	BottleSize        string
	CapacityML        float64
}

// ResolvedItem 计划明细与目录事实合并后的展开输入
type ResolvedItem struct {
	CatalogInfo
	Quantity int
}

// RecipeLine 配方行：基础产品每升所需的某原料量
type RecipeLine struct {
	IngredientID string
	QtyPerLiter  decimal.Decimal
	Unit         string
}

// IngredientStock 原料库存快照（计算时点）
type IngredientStock struct {
	IngredientID string
	Name         string
	Unit         string
	CurrentStock decimal.Decimal
	AveragePrice decimal.Decimal
}

// BottleStock 瓶型库存快照
type BottleStock struct {
	BottleTypeID string
	SizeLabel    string
	CapacityML   float64
	CurrentStock decimal.Decimal
	UnitPrice    decimal.Decimal
}

// ProductCostLine 单个SKU的成本拆解
type ProductCostLine struct {
	SellableProductID     string  `json:"sellableProductId"`
	VariationID           string  `json:"variationId,omitempty"`
	SellableProductCode   string  `json:"sellableProductCode"`
	SellableProductName   string  `json:"sellableProductName"`
	BottleSize            string  `json:"bottleSize"`
	CapacityML            float64 `json:"capacityMl"`
	TotalQuantity         int     `json:"totalQuantity"`
	VolumeLiters          float64 `json:"volumeLiters"`
	MaterialCostPerBottle float64 `json:"materialCostPerBottle"`
	BottleCostPerBottle   float64 `json:"bottleCostPerBottle"`
	TotalCostPerBottle    float64 `json:"totalCostPerBottle"`
	TotalMaterialCost     float64 `json:"totalMaterialCost"`
	TotalBottleCost       float64 `json:"totalBottleCost"`
	TotalCost             float64 `json:"totalCost"`
}

// MaterialRequirement 按原料聚合后的需求
type MaterialRequirement struct {
	MaterialID    string  `json:"materialId"`
	MaterialName  string  `json:"materialName"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"totalQuantity"`
	AveragePrice  float64 `json:"averagePrice"`
	TotalCost     float64 `json:"totalCost"`
	CurrentStock  float64 `json:"currentStock"`
	IsSufficient  bool    `json:"isSufficient"`
	ShortageQty   float64 `json:"shortageQty"`
}

// BottleRequirement 按瓶型聚合后的需求
type BottleRequirement struct {
	BottleTypeID  string  `json:"bottleTypeId"`
	BottleSize    string  `json:"bottleSize"`
	CapacityML    float64 `json:"capacityMl"`
	TotalQuantity int     `json:"totalQuantity"`
	Price         float64 `json:"price"`
	TotalCost     float64 `json:"totalCost"`
	CurrentStock  float64 `json:"currentStock"`
	IsSufficient  bool    `json:"isSufficient"`
	ShortageQty   float64 `json:"shortageQty"`
}

// Totals 总计行，各项等于对应明细之和
type Totals struct {
	TotalBottles      int     `json:"totalBottles"`
	TotalVolumeLiters float64 `json:"totalVolumeLiters"`
	TotalMaterialCost float64 `json:"totalMaterialCost"`
	TotalBottleCost   float64 `json:"totalBottleCost"`
	TotalCost         float64 `json:"totalCost"`
}

// PlanReport 计算结果。只读报告，不落库，不扣减库存。
type PlanReport struct {
	Summary          []ProductCostLine     `json:"summary"`
	MaterialsSummary []MaterialRequirement `json:"materialsSummary"`
	BottleSummary    []BottleRequirement   `json:"bottleSummary"`
	Totals           Totals                `json:"totals"`
	Warnings         []string              `json:"warnings,omitempty"`
	ItemErrors       []ItemError           `json:"itemErrors,omitempty"`
}
