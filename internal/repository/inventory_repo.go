package repository

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// FindIngredientsByIDs 批量获取原料库存快照（每个键只查一次，供计算引擎扇出调用）
func (r *InventoryRepository) FindIngredientsByIDs(ctx context.Context, ids []string) ([]entity.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []entity.Ingredient
	err := r.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&items).Error
	return items, err
}

// FindBottleTypesByIDs 批量获取瓶型库存快照
func (r *InventoryRepository) FindBottleTypesByIDs(ctx context.Context, ids []string) ([]entity.BottleType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []entity.BottleType
	err := r.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&items).Error
	return items, err
}

func (r *InventoryRepository) FindIngredientByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	var item entity.Ingredient
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) FindBottleTypeByID(ctx context.Context, id string) (*entity.BottleType, error) {
	var item entity.BottleType
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type IngredientListParams struct {
	Keyword  string
	LowStock bool
	Page     int
	Size     int
}

func (r *InventoryRepository) ListIngredients(ctx context.Context, params IngredientListParams) ([]entity.Ingredient, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Ingredient{}).Where("deleted_at IS NULL")
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ?", kw, kw)
	}
	if params.LowStock {
		query = query.Where("current_stock < min_stock AND min_stock > 0")
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var items []entity.Ingredient
	err := query.Order("code ASC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&items).Error
	return items, total, err
}

func (r *InventoryRepository) ListBottleTypes(ctx context.Context) ([]entity.BottleType, error) {
	var items []entity.BottleType
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("capacity_ml ASC").
		Find(&items).Error
	return items, err
}

func (r *InventoryRepository) CreateIngredient(ctx context.Context, item *entity.Ingredient) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *InventoryRepository) UpdateIngredient(ctx context.Context, item *entity.Ingredient) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *InventoryRepository) CreateBottleType(ctx context.Context, item *entity.BottleType) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *InventoryRepository) UpdateBottleType(ctx context.Context, item *entity.BottleType) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *InventoryRepository) CreateMovement(ctx context.Context, movement *entity.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *InventoryRepository) ListMovements(ctx context.Context, itemID string, page, size int) ([]entity.StockMovement, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.StockMovement{})
	if itemID != "" {
		query = query.Where("item_id = ?", itemID)
	}
	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	var items []entity.StockMovement
	err := query.Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&items).Error
	return items, total, err
}
