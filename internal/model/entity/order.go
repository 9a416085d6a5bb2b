package entity

import (
	"time"
)

// OrderStatus 订单状态
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order 销售订单
type Order struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderCode       string     `json:"order_code" gorm:"size:50;not null;uniqueIndex"`
	CustomerID      string     `json:"customer_id" gorm:"type:uuid;not null;index"`
	Status          string     `json:"status" gorm:"size:20;not null;default:PENDING"`
	TotalAmount     float64    `json:"total_amount" gorm:"type:decimal(12,2);default:0"`
	Currency        string     `json:"currency" gorm:"size:10;not null;default:THB"`
	PaymentChannelID string    `json:"payment_channel_id" gorm:"type:uuid"`
	OrderDate       *time.Time `json:"order_date"`
	DeliveryDate    *time.Time `json:"delivery_date"`
	ShippingAddress string     `json:"shipping_address" gorm:"size:500"`
	Notes           string     `json:"notes" gorm:"type:text"`
	CreatedBy       string     `json:"created_by" gorm:"size:64;not null"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at" gorm:"index"`

	Customer *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细
type OrderItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID     string    `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   string    `json:"product_id" gorm:"type:uuid;not null"`
	VariationID string    `json:"variation_id" gorm:"type:uuid"` // VARIATION产品必填
	ProductCode string    `json:"product_code" gorm:"size:64"`
	ProductName string    `json:"product_name" gorm:"size:128"`
	Quantity    int       `json:"quantity" gorm:"not null"` // 瓶数
	UnitPrice   float64   `json:"unit_price" gorm:"type:decimal(12,4);not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Order *Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
