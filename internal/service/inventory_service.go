package service

import (
	"context"
	"fmt"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ItemType 库存条目类型
const (
	ItemTypeIngredient = "INGREDIENT"
	ItemTypeBottle     = "BOTTLE"
)

// InventoryService 库存服务。入库时维护加权平均单价，
// 平均价是计划成本计算的价格来源。
type InventoryService struct {
	repo   *repository.InventoryRepository
	logger *zap.Logger
}

// NewInventoryService 创建库存服务
func NewInventoryService(repo *repository.InventoryRepository, logger *zap.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

// ListIngredients 原料列表
func (s *InventoryService) ListIngredients(ctx context.Context, params repository.IngredientListParams) (map[string]interface{}, error) {
	items, total, err := s.repo.ListIngredients(ctx, params)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"ingredients": items,
		"total":       total,
	}, nil
}

// ListBottleTypes 瓶型列表
func (s *InventoryService) ListBottleTypes(ctx context.Context) ([]entity.BottleType, error) {
	return s.repo.ListBottleTypes(ctx)
}

// CreateIngredientRequest 创建原料请求
type CreateIngredientRequest struct {
	Code     string  `json:"code" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Unit     string  `json:"unit"`
	MinStock float64 `json:"min_stock"`
}

// CreateIngredient 创建原料
func (s *InventoryService) CreateIngredient(ctx context.Context, userID string, req *CreateIngredientRequest) (*entity.Ingredient, error) {
	unit := req.Unit
	if unit == "" {
		unit = "kg"
	}
	item := &entity.Ingredient{
		Code:      req.Code,
		Name:      req.Name,
		Unit:      unit,
		MinStock:  req.MinStock,
		Status:    entity.ProductStatusActive,
		CreatedBy: userID,
	}
	if err := s.repo.CreateIngredient(ctx, item); err != nil {
		return nil, fmt.Errorf("create ingredient: %w", err)
	}
	return item, nil
}

// CreateBottleTypeRequest 创建瓶型请求
type CreateBottleTypeRequest struct {
	Code       string  `json:"code" binding:"required"`
	SizeLabel  string  `json:"size_label" binding:"required"`
	CapacityML float64 `json:"capacity_ml" binding:"required,gt=0"`
}

// CreateBottleType 创建瓶型
func (s *InventoryService) CreateBottleType(ctx context.Context, req *CreateBottleTypeRequest) (*entity.BottleType, error) {
	item := &entity.BottleType{
		Code:       req.Code,
		SizeLabel:  req.SizeLabel,
		CapacityML: req.CapacityML,
		Status:     entity.ProductStatusActive,
	}
	if err := s.repo.CreateBottleType(ctx, item); err != nil {
		return nil, fmt.Errorf("create bottle type: %w", err)
	}
	return item, nil
}

// StockInRequest 采购入库请求
type StockInRequest struct {
	ItemType  string  `json:"item_type" binding:"required,oneof=INGREDIENT BOTTLE"`
	ItemID    string  `json:"item_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
	Notes     string  `json:"notes"`
}

// weightedAverage 按数量加权合并新入库批次：
// avg' = (stock*avg + qty*price) / (stock + qty)
func weightedAverage(oldStock, oldAvg, qty, price decimal.Decimal) (newStock, newAvg decimal.Decimal) {
	newStock = oldStock.Add(qty)
	newAvg = price
	if newStock.IsPositive() {
		newAvg = oldStock.Mul(oldAvg).Add(qty.Mul(price)).Div(newStock)
	}
	return newStock, newAvg
}

// StockIn 采购入库。原料入库按加权平均刷新单价，
// 瓶型入库直接以最近采购价作为单价。
func (s *InventoryService) StockIn(ctx context.Context, userID string, req *StockInRequest) (*entity.StockMovement, error) {
	var movement *entity.StockMovement

	switch req.ItemType {
	case ItemTypeIngredient:
		item, err := s.repo.FindIngredientByID(ctx, req.ItemID)
		if err != nil {
			return nil, fmt.Errorf("ingredient not found: %w", err)
		}

		newStock, newAvg := weightedAverage(
			decimal.NewFromFloat(item.CurrentStock),
			decimal.NewFromFloat(item.AveragePrice),
			decimal.NewFromFloat(req.Quantity),
			decimal.NewFromFloat(req.UnitPrice),
		)

		item.CurrentStock, _ = newStock.Round(4).Float64()
		item.AveragePrice, _ = newAvg.Round(4).Float64()
		if err := s.repo.UpdateIngredient(ctx, item); err != nil {
			return nil, fmt.Errorf("update ingredient stock: %w", err)
		}

		movement = &entity.StockMovement{
			ItemType:   ItemTypeIngredient,
			ItemID:     item.ID,
			TxType:     entity.StockTxPurchaseIn,
			Quantity:   req.Quantity,
			UnitPrice:  req.UnitPrice,
			StockAfter: item.CurrentStock,
			Notes:      req.Notes,
			CreatedBy:  userID,
		}

	case ItemTypeBottle:
		item, err := s.repo.FindBottleTypeByID(ctx, req.ItemID)
		if err != nil {
			return nil, fmt.Errorf("bottle type not found: %w", err)
		}

		newStock := decimal.NewFromFloat(item.CurrentStock).Add(decimal.NewFromFloat(req.Quantity))
		item.CurrentStock, _ = newStock.Round(4).Float64()
		if req.UnitPrice > 0 {
			item.UnitPrice = req.UnitPrice
		}
		if err := s.repo.UpdateBottleType(ctx, item); err != nil {
			return nil, fmt.Errorf("update bottle stock: %w", err)
		}

		movement = &entity.StockMovement{
			ItemType:   ItemTypeBottle,
			ItemID:     item.ID,
			TxType:     entity.StockTxPurchaseIn,
			Quantity:   req.Quantity,
			UnitPrice:  req.UnitPrice,
			StockAfter: item.CurrentStock,
			Notes:      req.Notes,
			CreatedBy:  userID,
		}

	default:
		return nil, fmt.Errorf("unknown item type %q", req.ItemType)
	}

	if err := s.repo.CreateMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("record stock movement: %w", err)
	}

	s.logger.Info("stock in recorded",
		zap.String("item_type", movement.ItemType),
		zap.String("item_id", movement.ItemID),
		zap.Float64("quantity", movement.Quantity),
		zap.Float64("stock_after", movement.StockAfter))

	return movement, nil
}

// AdjustStockRequest 库存调整请求（盘点修正，正负皆可）
type AdjustStockRequest struct {
	ItemType string  `json:"item_type" binding:"required,oneof=INGREDIENT BOTTLE"`
	ItemID   string  `json:"item_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Notes    string  `json:"notes"`
}

// AdjustStock 库存调整。不影响平均单价。
func (s *InventoryService) AdjustStock(ctx context.Context, userID string, req *AdjustStockRequest) (*entity.StockMovement, error) {
	var stockAfter float64

	switch req.ItemType {
	case ItemTypeIngredient:
		item, err := s.repo.FindIngredientByID(ctx, req.ItemID)
		if err != nil {
			return nil, fmt.Errorf("ingredient not found: %w", err)
		}
		newStock := decimal.NewFromFloat(item.CurrentStock).Add(decimal.NewFromFloat(req.Quantity))
		if newStock.IsNegative() {
			return nil, fmt.Errorf("adjustment would make stock negative")
		}
		item.CurrentStock, _ = newStock.Round(4).Float64()
		if err := s.repo.UpdateIngredient(ctx, item); err != nil {
			return nil, fmt.Errorf("update ingredient stock: %w", err)
		}
		stockAfter = item.CurrentStock

	case ItemTypeBottle:
		item, err := s.repo.FindBottleTypeByID(ctx, req.ItemID)
		if err != nil {
			return nil, fmt.Errorf("bottle type not found: %w", err)
		}
		newStock := decimal.NewFromFloat(item.CurrentStock).Add(decimal.NewFromFloat(req.Quantity))
		if newStock.IsNegative() {
			return nil, fmt.Errorf("adjustment would make stock negative")
		}
		item.CurrentStock, _ = newStock.Round(4).Float64()
		if err := s.repo.UpdateBottleType(ctx, item); err != nil {
			return nil, fmt.Errorf("update bottle stock: %w", err)
		}
		stockAfter = item.CurrentStock

	default:
		return nil, fmt.Errorf("unknown item type %q", req.ItemType)
	}

	movement := &entity.StockMovement{
		ItemType:   req.ItemType,
		ItemID:     req.ItemID,
		TxType:     entity.StockTxAdjust,
		Quantity:   req.Quantity,
		StockAfter: stockAfter,
		Notes:      req.Notes,
		CreatedBy:  userID,
	}
	if err := s.repo.CreateMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("record stock movement: %w", err)
	}
	return movement, nil
}

// ListMovements 库存流水
func (s *InventoryService) ListMovements(ctx context.Context, itemID string, page, size int) (map[string]interface{}, error) {
	items, total, err := s.repo.ListMovements(ctx, itemID, page, size)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"movements": items,
		"total":     total,
	}, nil
}
