package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/redis/go-redis/v9"
)

// productCacheTTL 产品详情缓存时间
const productCacheTTL = 5 * time.Minute

// ProductService 产品目录服务
type ProductService struct {
	repo *repository.ProductRepository
	rdb  *redis.Client
}

// NewProductService 创建产品服务
func NewProductService(repo *repository.ProductRepository, rdb *redis.Client) *ProductService {
	return &ProductService{repo: repo, rdb: rdb}
}

// Get 获取产品详情（带Redis缓存）
func (s *ProductService) Get(ctx context.Context, id string) (*entity.SellableProduct, error) {
	cacheKey := "product:" + id
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
		var product entity.SellableProduct
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			return &product, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		s.rdb.Set(ctx, cacheKey, data, productCacheTTL)
	}
	return product, nil
}

// List 产品列表
func (s *ProductService) List(ctx context.Context, params repository.ProductListParams) (map[string]interface{}, error) {
	products, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"products": products,
		"total":    total,
	}, nil
}

// CreateProductRequest 创建产品请求
type CreateProductRequest struct {
	Code          string       `json:"code" binding:"required"`
	Name          string       `json:"name" binding:"required"`
	Kind          string       `json:"kind" binding:"required,oneof=SIMPLE VARIATION"`
	BaseProductID string       `json:"base_product_id" binding:"required"`
	BottleTypeID  string       `json:"bottle_type_id"`
	Price         float64      `json:"price"`
	ImageURL      string       `json:"image_url"`
	Specs         entity.JSONB `json:"specs"`
}

// Create 创建可销售产品。SIMPLE必须挂瓶型，VARIATION的瓶型由变体承载。
func (s *ProductService) Create(ctx context.Context, userID string, req *CreateProductRequest) (*entity.SellableProduct, error) {
	if req.Kind == entity.ProductKindSimple && req.BottleTypeID == "" {
		return nil, fmt.Errorf("bottle_type_id is required for simple products")
	}
	if req.Kind == entity.ProductKindVariation && req.BottleTypeID != "" {
		return nil, fmt.Errorf("bottle_type_id must be empty for variation products")
	}

	product := &entity.SellableProduct{
		Code:          req.Code,
		Name:          req.Name,
		Kind:          req.Kind,
		BaseProductID: req.BaseProductID,
		BottleTypeID:  req.BottleTypeID,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		Specs:         req.Specs,
		Status:        entity.ProductStatusActive,
		CreatedBy:     userID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// UpdateProductRequest 更新产品请求
type UpdateProductRequest struct {
	Name     *string      `json:"name"`
	Price    *float64     `json:"price"`
	ImageURL *string      `json:"image_url"`
	Status   *string      `json:"status"`
	Specs    entity.JSONB `json:"specs"`
}

// Update 更新产品
func (s *ProductService) Update(ctx context.Context, id string, req *UpdateProductRequest) (*entity.SellableProduct, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Specs != nil {
		product.Specs = req.Specs
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.clearCache(ctx, id)
	return product, nil
}

// Delete 删除产品（软删除）
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.clearCache(ctx, id)
	return nil
}

// CreateVariationRequest 创建变体请求
type CreateVariationRequest struct {
	Name         string  `json:"name" binding:"required"`
	BottleTypeID string  `json:"bottle_type_id" binding:"required"`
	Price        float64 `json:"price"`
}

// CreateVariation 给VARIATION产品增加变体
func (s *ProductService) CreateVariation(ctx context.Context, productID string, req *CreateVariationRequest) (*entity.ProductVariation, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Kind != entity.ProductKindVariation {
		return nil, fmt.Errorf("product %s does not support variations", product.Code)
	}

	variation := &entity.ProductVariation{
		ProductID:    productID,
		Name:         req.Name,
		BottleTypeID: req.BottleTypeID,
		Price:        req.Price,
		Status:       entity.ProductStatusActive,
	}
	if err := s.repo.CreateVariation(ctx, variation); err != nil {
		return nil, fmt.Errorf("create variation: %w", err)
	}
	s.clearCache(ctx, productID)
	return variation, nil
}

// ListBaseProducts 基础产品列表（配方主体）
func (s *ProductService) ListBaseProducts(ctx context.Context) ([]entity.BaseProduct, error) {
	return s.repo.ListBaseProducts(ctx)
}

// CreateBaseProductRequest 创建基础产品请求
type CreateBaseProductRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateBaseProduct 创建基础产品
func (s *ProductService) CreateBaseProduct(ctx context.Context, userID string, req *CreateBaseProductRequest) (*entity.BaseProduct, error) {
	base := &entity.BaseProduct{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Status:      entity.ProductStatusActive,
		CreatedBy:   userID,
	}
	if err := s.repo.CreateBaseProduct(ctx, base); err != nil {
		return nil, fmt.Errorf("create base product: %w", err)
	}
	return base, nil
}

// clearCache 清除产品缓存
func (s *ProductService) clearCache(ctx context.Context, id string) {
	s.rdb.Del(ctx, "product:"+id)
}
