package entity

import (
	"time"
)

// ProductKind 销售产品类型
const (
	ProductKindSimple    = "SIMPLE"    // 单一规格
	ProductKindVariation = "VARIATION" // 多规格（按瓶型拆分）
)

// ProductStatus 产品状态
const (
	ProductStatusActive   = "ACTIVE"
	ProductStatusInactive = "INACTIVE"
)

// BaseProduct 基础产品（果汁配方主体，与瓶型无关）
type BaseProduct struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code        string     `json:"code" gorm:"size:64;not null;uniqueIndex"`
	Name        string     `json:"name" gorm:"size:128;not null"`
	Status      string     `json:"status" gorm:"size:16;not null;default:ACTIVE"`
	Description string     `json:"description" gorm:"type:text"`
	CreatedBy   string     `json:"created_by" gorm:"size:64"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`

	Recipes []Recipe `json:"recipes,omitempty" gorm:"foreignKey:BaseProductID"`
}

func (BaseProduct) TableName() string {
	return "base_products"
}

// SellableProduct 可销售产品（SKU层，SIMPLE直接挂瓶型，VARIATION按变体挂瓶型）
type SellableProduct struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code          string     `json:"code" gorm:"size:64;not null;uniqueIndex"`
	Name          string     `json:"name" gorm:"size:128;not null"`
	Kind          string     `json:"kind" gorm:"size:16;not null;default:SIMPLE"`
	BaseProductID string     `json:"base_product_id" gorm:"type:uuid;not null;index"`
	BottleTypeID  string     `json:"bottle_type_id" gorm:"type:uuid"` // SIMPLE专用，VARIATION为空
	Price         float64    `json:"price" gorm:"type:decimal(12,2);default:0"`
	ImageURL      string     `json:"image_url" gorm:"size:512"`
	Status        string     `json:"status" gorm:"size:16;not null;default:ACTIVE"`
	Specs         JSONB      `json:"specs" gorm:"type:jsonb"`
	CreatedBy     string     `json:"created_by" gorm:"size:64"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at" gorm:"index"`

	BaseProduct *BaseProduct       `json:"base_product,omitempty" gorm:"foreignKey:BaseProductID"`
	BottleType  *BottleType        `json:"bottle_type,omitempty" gorm:"foreignKey:BottleTypeID"`
	Variations  []ProductVariation `json:"variations,omitempty" gorm:"foreignKey:ProductID"`
}

func (SellableProduct) TableName() string {
	return "sellable_products"
}

// ProductVariation 产品变体（一个变体对应一种瓶型）
type ProductVariation struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID    string     `json:"product_id" gorm:"type:uuid;not null;index"`
	Name         string     `json:"name" gorm:"size:64;not null"` // 规格名，如 250ml / 1L
	BottleTypeID string     `json:"bottle_type_id" gorm:"type:uuid;not null"`
	Price        float64    `json:"price" gorm:"type:decimal(12,2);default:0"`
	Status       string     `json:"status" gorm:"size:16;not null;default:ACTIVE"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`

	Product    *SellableProduct `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	BottleType *BottleType      `json:"bottle_type,omitempty" gorm:"foreignKey:BottleTypeID"`
}

func (ProductVariation) TableName() string {
	return "product_variations"
}
