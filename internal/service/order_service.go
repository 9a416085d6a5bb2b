package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kwamkid/joolz-factory-sub003/internal/model/entity"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/shopspring/decimal"
)

// OrderService 销售订单服务
type OrderService struct {
	orderRepo    *repository.OrderRepository
	productRepo  *repository.ProductRepository
	customerRepo *repository.CustomerRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo *repository.OrderRepository, productRepo *repository.ProductRepository, customerRepo *repository.CustomerRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// CreateOrderItemRequest 订单明细请求
type CreateOrderItemRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	VariationID string `json:"variation_id"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	CustomerID       string                   `json:"customer_id" binding:"required"`
	PaymentChannelID string                   `json:"payment_channel_id"`
	DeliveryDate     *time.Time               `json:"delivery_date"`
	ShippingAddress  string                   `json:"shipping_address"`
	Notes            string                   `json:"notes"`
	Items            []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Create 创建订单。单价取自产品目录（变体价优先），金额服务端计算。
func (s *OrderService) Create(ctx context.Context, userID string, req *CreateOrderRequest) (*entity.Order, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	now := time.Now()
	order := &entity.Order{
		OrderCode:        generateOrderCode(now),
		CustomerID:       req.CustomerID,
		Status:           entity.OrderStatusPending,
		Currency:         "THB",
		PaymentChannelID: req.PaymentChannelID,
		OrderDate:        &now,
		DeliveryDate:     req.DeliveryDate,
		ShippingAddress:  req.ShippingAddress,
		Notes:            req.Notes,
		CreatedBy:        userID,
	}

	total := decimal.Zero
	for _, line := range req.Items {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", line.ProductID, err)
		}

		unitPrice := product.Price
		productName := product.Name
		switch product.Kind {
		case entity.ProductKindSimple:
			if line.VariationID != "" {
				return nil, fmt.Errorf("product %s does not take a variation", product.Code)
			}
		case entity.ProductKindVariation:
			if line.VariationID == "" {
				return nil, fmt.Errorf("product %s requires a variation", product.Code)
			}
			found := false
			for i := range product.Variations {
				v := &product.Variations[i]
				if v.ID == line.VariationID {
					unitPrice = v.Price
					productName = fmt.Sprintf("%s (%s)", product.Name, v.Name)
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("variation %s not found for product %s", line.VariationID, product.Code)
			}
		}

		amount := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		amountF, _ := amount.Float64()

		order.Items = append(order.Items, entity.OrderItem{
			ProductID:   line.ProductID,
			VariationID: line.VariationID,
			ProductCode: product.Code,
			ProductName: productName,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			Amount:      amountF,
		})
		total = total.Add(amount)
	}

	order.TotalAmount, _ = total.Float64()

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// Get 获取订单详情
func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// List 订单列表
func (s *OrderService) List(ctx context.Context, params repository.OrderListParams) (map[string]interface{}, error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"orders": orders,
		"total":  total,
	}, nil
}

// 订单状态流转表
var orderTransitions = map[string][]string{
	entity.OrderStatusPending:   {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed: {entity.OrderStatusShipped, entity.OrderStatusCancelled},
	entity.OrderStatusShipped:   {entity.OrderStatusCompleted},
}

// UpdateStatus 订单状态流转
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range orderTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition order from %s to %s", order.Status, status)
	}

	order.Status = status
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return order, nil
}

// generateOrderCode 生成订单编号 SO-YYYYMMDD-XXXX
func generateOrderCode(now time.Time) string {
	return fmt.Sprintf("SO-%s-%04d", now.Format("20060102"), now.UnixNano()%10000)
}
