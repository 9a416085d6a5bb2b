package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/service"
	"gorm.io/gorm"
)

// PaymentHandler 支付渠道处理器
type PaymentHandler struct {
	svc *service.PaymentService
}

// NewPaymentHandler 创建支付渠道处理器
func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// List 支付渠道列表
// GET /api/v1/payment-channels
func (h *PaymentHandler) List(c *gin.Context) {
	channels, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, channels)
}

// Create 创建支付渠道
// POST /api/v1/payment-channels
func (h *PaymentHandler) Create(c *gin.Context) {
	var req service.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	channel, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Created(c, channel)
}

// Update 更新支付渠道
// PUT /api/v1/payment-channels/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	var req service.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	channel, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "payment channel not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, channel)
}

// Delete 删除支付渠道
// DELETE /api/v1/payment-channels/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}
