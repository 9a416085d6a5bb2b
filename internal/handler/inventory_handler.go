package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/repository"
	"github.com/kwamkid/joolz-factory-sub003/internal/service"
	"gorm.io/gorm"
)

// InventoryHandler 库存处理器
type InventoryHandler struct {
	svc *service.InventoryService
}

// NewInventoryHandler 创建库存处理器
func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ListIngredients 原料列表
// GET /api/v1/inventory/ingredients
func (h *InventoryHandler) ListIngredients(c *gin.Context) {
	page, size := ParsePageParams(c)
	lowStock, _ := strconv.ParseBool(c.DefaultQuery("low_stock", "false"))
	params := repository.IngredientListParams{
		Keyword:  c.Query("keyword"),
		LowStock: lowStock,
		Page:     page,
		Size:     size,
	}

	result, err := h.svc.ListIngredients(c.Request.Context(), params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, result)
}

// ListBottleTypes 瓶型列表
// GET /api/v1/inventory/bottle-types
func (h *InventoryHandler) ListBottleTypes(c *gin.Context) {
	items, err := h.svc.ListBottleTypes(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, items)
}

// CreateIngredient 创建原料
// POST /api/v1/inventory/ingredients
func (h *InventoryHandler) CreateIngredient(c *gin.Context) {
	var req service.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	item, err := h.svc.CreateIngredient(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Created(c, item)
}

// CreateBottleType 创建瓶型
// POST /api/v1/inventory/bottle-types
func (h *InventoryHandler) CreateBottleType(c *gin.Context) {
	var req service.CreateBottleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	item, err := h.svc.CreateBottleType(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Created(c, item)
}

// StockIn 采购入库
// POST /api/v1/inventory/stock-in
func (h *InventoryHandler) StockIn(c *gin.Context) {
	var req service.StockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	movement, err := h.svc.StockIn(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, err.Error())
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Created(c, movement)
}

// AdjustStock 库存调整
// POST /api/v1/inventory/adjust
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	movement, err := h.svc.AdjustStock(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, err.Error())
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Created(c, movement)
}

// ListMovements 库存流水
// GET /api/v1/inventory/movements
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	page, size := ParsePageParams(c)
	result, err := h.svc.ListMovements(c.Request.Context(), c.Query("item_id"), page, size)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, result)
}
