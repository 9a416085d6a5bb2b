package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/kwamkid/joolz-factory-sub003/internal/service"
	"gorm.io/gorm"
)

// ProductHandler 产品目录处理器
type ProductHandler struct {
	svc *service.ProductService
}

// NewProductHandler 创建产品处理器
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List 产品列表
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	page, size := ParsePageParams(c)
	params := repository.ProductListParams{
		Keyword: c.Query("keyword"),
		Status:  c.Query("status"),
		Kind:    c.Query("kind"),
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

// Get 产品详情
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "product not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, product)
}

// Create 创建产品
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	product, err := h.svc.Create(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, product)
}

// Update 更新产品
// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	product, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "product not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, product)
}

// Delete 删除产品
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}

// CreateVariation 创建产品变体
// POST /api/v1/products/:id/variations
func (h *ProductHandler) CreateVariation(c *gin.Context) {
	var req service.CreateVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	variation, err := h.svc.CreateVariation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "product not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Created(c, variation)
}

// ListBaseProducts 基础产品列表
// GET /api/v1/base-products
func (h *ProductHandler) ListBaseProducts(c *gin.Context) {
	items, err := h.svc.ListBaseProducts(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, items)
}

// CreateBaseProduct 创建基础产品
// POST /api/v1/base-products
func (h *ProductHandler) CreateBaseProduct(c *gin.Context) {
	var req service.CreateBaseProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	base, err := h.svc.CreateBaseProduct(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Created(c, base)
}
