package entity

import (
	"time"
)

// StockTxType 库存交易类型
const (
	StockTxPurchaseIn = "PURCHASE_IN" // 采购入库
	StockTxAdjust     = "ADJUST"      // 库存调整
	StockTxProduction = "PRODUCTION"  // 生产领用
)

// Ingredient 原料（库存快照含加权平均单价）
type Ingredient struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code         string     `json:"code" gorm:"size:64;not null;uniqueIndex"`
	Name         string     `json:"name" gorm:"size:128;not null"`
	Unit         string     `json:"unit" gorm:"size:20;not null;default:kg"`
	CurrentStock float64    `json:"current_stock" gorm:"type:decimal(12,4);default:0"`
	AveragePrice float64    `json:"average_price" gorm:"type:decimal(12,4);default:0"` // 加权平均单价
	MinStock     float64    `json:"min_stock" gorm:"type:decimal(12,4);default:0"`
	Status       string     `json:"status" gorm:"size:16;not null;default:ACTIVE"`
	CreatedBy    string     `json:"created_by" gorm:"size:64"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// BottleType 瓶型（包材库存）
type BottleType struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code         string     `json:"code" gorm:"size:64;not null;uniqueIndex"`
	SizeLabel    string     `json:"size_label" gorm:"size:32;not null"` // 250ml / 500ml / 1L
	CapacityML   float64    `json:"capacity_ml" gorm:"type:decimal(12,2);not null"`
	CurrentStock float64    `json:"current_stock" gorm:"type:decimal(12,4);default:0"`
	UnitPrice    float64    `json:"unit_price" gorm:"type:decimal(12,4);default:0"`
	Status       string     `json:"status" gorm:"size:16;not null;default:ACTIVE"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`
}

func (BottleType) TableName() string {
	return "bottle_types"
}

// StockMovement 库存流水（正=入，负=出）
type StockMovement struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ItemType    string    `json:"item_type" gorm:"size:16;not null"` // INGREDIENT / BOTTLE
	ItemID      string    `json:"item_id" gorm:"type:uuid;not null;index"`
	TxType      string    `json:"tx_type" gorm:"size:20;not null"`
	Quantity    float64   `json:"quantity" gorm:"type:decimal(12,4);not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:decimal(12,4);default:0"`
	StockAfter  float64   `json:"stock_after" gorm:"type:decimal(12,4);default:0"`
	Notes       string    `json:"notes" gorm:"type:text"`
	CreatedBy   string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
