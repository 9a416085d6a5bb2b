package repository

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// ListByBaseProduct 某基础产品的全部配方行
func (r *RecipeRepository) ListByBaseProduct(ctx context.Context, baseProductID string) ([]entity.Recipe, error) {
	var lines []entity.Recipe
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("base_product_id = ? AND deleted_at IS NULL", baseProductID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*entity.Recipe, error) {
	var line entity.Recipe
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *RecipeRepository) Create(ctx context.Context, line *entity.Recipe) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *RecipeRepository) Update(ctx context.Context, line *entity.Recipe) error {
	return r.db.WithContext(ctx).Save(line).Error
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Recipe{}).
		Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}
