package repository

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByID 获取SKU，预加载瓶型与变体供目录解析使用
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.SellableProduct, error) {
	var product entity.SellableProduct
	err := r.db.WithContext(ctx).
		Preload("BottleType").
		Preload("Variations", "deleted_at IS NULL").
		Preload("Variations.BottleType").
		Preload("BaseProduct").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

type ProductListParams struct {
	Keyword string
	Status  string
	Kind    string
	Page    int
	Size    int
}

func (r *ProductRepository) List(ctx context.Context, params ProductListParams) ([]entity.SellableProduct, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.SellableProduct{}).Where("deleted_at IS NULL")
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ?", kw, kw)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Kind != "" {
		query = query.Where("kind = ?", params.Kind)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var items []entity.SellableProduct
	err := query.Preload("BottleType").Preload("Variations", "deleted_at IS NULL").
		Order("code ASC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&items).Error
	return items, total, err
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.SellableProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.SellableProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entity.SellableProduct{}).
		Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

func (r *ProductRepository) CreateVariation(ctx context.Context, variation *entity.ProductVariation) error {
	return r.db.WithContext(ctx).Create(variation).Error
}

func (r *ProductRepository) UpdateVariation(ctx context.Context, variation *entity.ProductVariation) error {
	return r.db.WithContext(ctx).Save(variation).Error
}

// FindBaseProductByID 获取基础产品
func (r *ProductRepository) FindBaseProductByID(ctx context.Context, id string) (*entity.BaseProduct, error) {
	var base entity.BaseProduct
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&base).Error
	if err != nil {
		return nil, err
	}
	return &base, nil
}

func (r *ProductRepository) ListBaseProducts(ctx context.Context) ([]entity.BaseProduct, error) {
	var items []entity.BaseProduct
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("code ASC").
		Find(&items).Error
	return items, err
}

func (r *ProductRepository) CreateBaseProduct(ctx context.Context, base *entity.BaseProduct) error {
	return r.db.WithContext(ctx).Create(base).Error
}

func (r *ProductRepository) UpdateBaseProduct(ctx context.Context, base *entity.BaseProduct) error {
	return r.db.WithContext(ctx).Save(base).Error
}
