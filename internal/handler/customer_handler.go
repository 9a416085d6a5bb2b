package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/kwamkid/joolz-factory-sub003/internal/service"
	"gorm.io/gorm"
)

// CustomerHandler 客户处理器
type CustomerHandler struct {
	svc *service.CustomerService
}

// NewCustomerHandler 创建客户处理器
func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List 客户列表
// GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	page, size := ParsePageParams(c)
	params := repository.CustomerListParams{
		Keyword: c.Query("keyword"),
		Type:    c.Query("type"),
		Status:  c.Query("status"),
		Page:    page,
		Size:    size,
	}

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, result)
}

// Get 客户详情
// GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "customer not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, customer)
}

// Create 创建客户
// POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	customer, err := h.svc.Create(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Created(c, customer)
}

// Update 更新客户
// PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	customer, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "customer not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, customer)
}

// Delete 删除客户
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}
