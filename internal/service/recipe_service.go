package service

import (
	"context"
	"fmt"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
)

// RecipeService 配方服务。配方挂在基础产品上，按每升产出定义原料用量。
type RecipeService struct {
	recipeRepo  *repository.RecipeRepository
	productRepo *repository.ProductRepository
}

// NewRecipeService 创建配方服务
func NewRecipeService(recipeRepo *repository.RecipeRepository, productRepo *repository.ProductRepository) *RecipeService {
	return &RecipeService{recipeRepo: recipeRepo, productRepo: productRepo}
}

// ListByBaseProduct 获取某基础产品的配方行
func (s *RecipeService) ListByBaseProduct(ctx context.Context, baseProductID string) ([]entity.Recipe, error) {
	return s.recipeRepo.ListByBaseProduct(ctx, baseProductID)
}

// CreateRecipeRequest 创建配方行请求
type CreateRecipeRequest struct {
	BaseProductID string  `json:"base_product_id" binding:"required"`
	IngredientID  string  `json:"ingredient_id" binding:"required"`
	QtyPerLiter   float64 `json:"qty_per_liter" binding:"required,gt=0"`
	Unit          string  `json:"unit"`
	Notes         string  `json:"notes"`
}

// Create 创建配方行
func (s *RecipeService) Create(ctx context.Context, userID string, req *CreateRecipeRequest) (*entity.Recipe, error) {
	if _, err := s.productRepo.FindBaseProductByID(ctx, req.BaseProductID); err != nil {
		return nil, fmt.Errorf("base product not found: %w", err)
	}

	unit := req.Unit
	if unit == "" {
		unit = "kg"
	}
	recipe := &entity.Recipe{
		BaseProductID: req.BaseProductID,
		IngredientID:  req.IngredientID,
		QtyPerLiter:   req.QtyPerLiter,
		Unit:          unit,
		Notes:         req.Notes,
		CreatedBy:     userID,
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

// UpdateRecipeRequest 更新配方行请求
type UpdateRecipeRequest struct {
	QtyPerLiter *float64 `json:"qty_per_liter"`
	Unit        *string  `json:"unit"`
	Notes       *string  `json:"notes"`
}

// Update 更新配方行
func (s *RecipeService) Update(ctx context.Context, id string, req *UpdateRecipeRequest) (*entity.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.QtyPerLiter != nil {
		if *req.QtyPerLiter <= 0 {
			return nil, fmt.Errorf("qty_per_liter must be positive")
		}
		recipe.QtyPerLiter = *req.QtyPerLiter
	}
	if req.Unit != nil {
		recipe.Unit = *req.Unit
	}
	if req.Notes != nil {
		recipe.Notes = *req.Notes
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return recipe, nil
}

// Delete 删除配方行
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	return s.recipeRepo.Delete(ctx, id)
}
