package entity

import (
	"time"
)

// Recipe 配方行：基础产品每升产出所需的原料量
type Recipe struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BaseProductID string     `json:"base_product_id" gorm:"type:uuid;not null;index"`
	IngredientID  string     `json:"ingredient_id" gorm:"type:uuid;not null;index"`
	QtyPerLiter   float64    `json:"qty_per_liter" gorm:"type:decimal(12,4);not null"`
	Unit          string     `json:"unit" gorm:"size:20;not null;default:kg"`
	Notes         string     `json:"notes" gorm:"type:text"`
	CreatedBy     string     `json:"created_by" gorm:"size:64"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at" gorm:"index"`

	BaseProduct *BaseProduct `json:"base_product,omitempty" gorm:"foreignKey:BaseProductID"`
	Ingredient  *Ingredient  `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}

func (Recipe) TableName() string {
	return "recipes"
}
