package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/kwamkid/joolz-factory-sub003/internal/service"
	"gorm.io/gorm"
)

// OrderHandler 订单处理器
type OrderHandler struct {
	svc *service.OrderService
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List 订单列表
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	page, size := ParsePageParams(c)
	params := repository.OrderListParams{
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		Page:       page,
		Size:       size,
	}

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, result)
}

// Get 订单详情
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "order not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, order)
}

// Create 创建订单
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	order, err := h.svc.Create(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, order)
}

// UpdateStatusRequest 状态流转请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CONFIRMED SHIPPED COMPLETED CANCELLED"`
}

// UpdateStatus 订单状态流转
// PUT /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "order not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, order)
}
