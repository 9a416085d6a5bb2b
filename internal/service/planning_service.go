package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"github.com/kwamkid/joolz-factory-sub003/internal/planning"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlanningService 生产计划计算服务。
// 引擎本身不碰数据库，这里负责把gorm仓库适配成引擎的解析器接口。
type PlanningService struct {
	engine *planning.Engine
	orders *repository.OrderRepository
	logger *zap.Logger
}

func NewPlanningService(repos *repository.Repositories, logger *zap.Logger) *PlanningService {
	engine := planning.NewEngine(
		&catalogResolver{products: repos.Product},
		&recipeResolver{recipes: repos.Recipe},
		&stockResolver{inventory: repos.Inventory},
	)
	return &PlanningService{
		engine: engine,
		orders: repos.Order,
		logger: logger,
	}
}

// Calculate 按请求明细计算物料需求与成本，只读不扣库存
func (s *PlanningService) Calculate(ctx context.Context, req planning.PlanRequest) (*planning.PlanReport, error) {
	report, err := s.engine.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(report.ItemErrors) > 0 {
		s.logger.Warn("planning calculated with item errors",
			zap.Int("items", len(req.Items)),
			zap.Int("item_errors", len(report.ItemErrors)))
	}
	return report, nil
}

// CalculateFromOrders 把未发货订单的待生产数量作为计划明细来计算
func (s *PlanningService) CalculateFromOrders(ctx context.Context) (*planning.PlanReport, error) {
	rows, err := s.orders.GetPendingDemand(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pending demand: %w", err)
	}

	items := make([]planning.PlanningItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, planning.PlanningItem{
			SellableProductID: row.ProductID,
			VariationID:       row.VariationID,
			Quantity:          row.Total,
		})
	}
	return s.Calculate(ctx, planning.PlanRequest{Items: items})
}

// catalogResolver 目录解析适配器。SIMPLE/VARIATION的分支在这里消化，
// 引擎拿到的永远是展平后的 (SKU, 瓶型, 基础产品) 事实。
type catalogResolver struct {
	products *repository.ProductRepository
}

func (r *catalogResolver) ResolveProduct(ctx context.Context, sellableProductID, variationID string) (*planning.CatalogInfo, error) {
	product, err := r.products.FindByID(ctx, sellableProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, planning.ErrProductNotFound
		}
		return nil, err
	}

	info := &planning.CatalogInfo{
		SellableProductID: product.ID,
		ProductCode:       product.Code,
		ProductName:       product.Name,
		Kind:              product.Kind,
		BaseProductID:     product.BaseProductID,
	}

	switch product.Kind {
	case entity.ProductKindSimple:
		if variationID != "" {
			return nil, planning.ErrVariationNotAllowed
		}
		info.BottleTypeID = product.BottleTypeID
		if product.BottleType != nil {
			info.BottleSize = product.BottleType.SizeLabel
			info.CapacityML = product.BottleType.CapacityML
		}
		return info, nil

	case entity.ProductKindVariation:
		if variationID == "" {
			return nil, planning.ErrVariationRequired
		}
		for i := range product.Variations {
			v := &product.Variations[i]
			if v.ID != variationID {
				continue
			}
			info.VariationID = v.ID
			info.ProductName = fmt.Sprintf("%s (%s)", product.Name, v.Name)
			info.BottleTypeID = v.BottleTypeID
			if v.BottleType != nil {
				info.BottleSize = v.BottleType.SizeLabel
				info.CapacityML = v.BottleType.CapacityML
			}
			return info, nil
		}
		return nil, planning.ErrVariationNotFound

	default:
		return nil, fmt.Errorf("unknown product kind %q for product %s", product.Kind, product.ID)
	}
}

// recipeResolver 配方适配器，无配方返回空切片（引擎按零物料降级处理）
type recipeResolver struct {
	recipes *repository.RecipeRepository
}

func (r *recipeResolver) RecipeLines(ctx context.Context, baseProductID string) ([]planning.RecipeLine, error) {
	rows, err := r.recipes.ListByBaseProduct(ctx, baseProductID)
	if err != nil {
		return nil, err
	}
	lines := make([]planning.RecipeLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, planning.RecipeLine{
			IngredientID: row.IngredientID,
			QtyPerLiter:  decimal.NewFromFloat(row.QtyPerLiter),
			Unit:         row.Unit,
		})
	}
	return lines, nil
}

// stockResolver 库存快照适配器，批量查询，不存在的键不出现在结果里
type stockResolver struct {
	inventory *repository.InventoryRepository
}

func (r *stockResolver) IngredientStocks(ctx context.Context, ingredientIDs []string) (map[string]planning.IngredientStock, error) {
	rows, err := r.inventory.FindIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	stocks := make(map[string]planning.IngredientStock, len(rows))
	for _, row := range rows {
		stocks[row.ID] = planning.IngredientStock{
			IngredientID: row.ID,
			Name:         row.Name,
			Unit:         row.Unit,
			CurrentStock: decimal.NewFromFloat(row.CurrentStock),
			AveragePrice: decimal.NewFromFloat(row.AveragePrice),
		}
	}
	return stocks, nil
}

func (r *stockResolver) BottleStocks(ctx context.Context, bottleTypeIDs []string) (map[string]planning.BottleStock, error) {
	rows, err := r.inventory.FindBottleTypesByIDs(ctx, bottleTypeIDs)
	if err != nil {
		return nil, err
	}
	stocks := make(map[string]planning.BottleStock, len(rows))
	for _, row := range rows {
		stocks[row.ID] = planning.BottleStock{
			BottleTypeID: row.ID,
			SizeLabel:    row.SizeLabel,
			CapacityML:   row.CapacityML,
			CurrentStock: decimal.NewFromFloat(row.CurrentStock),
			UnitPrice:    decimal.NewFromFloat(row.UnitPrice),
		}
	}
	return stocks, nil
}
