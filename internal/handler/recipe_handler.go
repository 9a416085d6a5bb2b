package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/service"
	"gorm.io/gorm"
)

// RecipeHandler 配方处理器
type RecipeHandler struct {
	svc *service.RecipeService
}

// NewRecipeHandler 创建配方处理器
func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// ListByBaseProduct 某基础产品的配方
// GET /api/v1/base-products/:id/recipes
func (h *RecipeHandler) ListByBaseProduct(c *gin.Context) {
	recipes, err := h.svc.ListByBaseProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, recipes)
}

// Create 创建配方行
// POST /api/v1/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req service.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	recipe, err := h.svc.Create(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, recipe)
}

// Update 更新配方行
// PUT /api/v1/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	var req service.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	recipe, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "recipe not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, recipe)
}

// Delete 删除配方行
// DELETE /api/v1/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}
