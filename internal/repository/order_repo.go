package repository

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

type OrderListParams struct {
	CustomerID string
	Status     string
	Page       int
	Size       int
}

func (r *OrderRepository) List(ctx context.Context, params OrderListParams) ([]entity.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Order{}).Where("deleted_at IS NULL")
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var items []entity.Order
	err := query.Preload("Customer").Preload("Items").
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&items).Error
	return items, total, err
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// PendingDemandRow 待生产需求行（按SKU+变体汇总）
type PendingDemandRow struct {
	ProductID   string
	VariationID string
	Total       int
}

// GetPendingDemand 汇总未发货订单里每个SKU的待生产数量，
// 作为生产计划计算的输入来源之一
func (r *OrderRepository) GetPendingDemand(ctx context.Context) ([]PendingDemandRow, error) {
	var rows []PendingDemandRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.product_id, i.variation_id, COALESCE(SUM(i.quantity), 0) as total
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status IN ('PENDING', 'CONFIRMED')
		AND o.deleted_at IS NULL
		GROUP BY i.product_id, i.variation_id
		ORDER BY i.product_id, i.variation_id
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
