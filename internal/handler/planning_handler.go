package handler

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/planning"
	"github.com/xuri/excelize/v2"
)

// PlanningCalculator 生产计划计算入口
type PlanningCalculator interface {
	Calculate(ctx context.Context, req planning.PlanRequest) (*planning.PlanReport, error)
	CalculateFromOrders(ctx context.Context) (*planning.PlanReport, error)
	ExportPlan(ctx context.Context, req planning.PlanRequest) (*excelize.File, string, error)
}

// PlanningHandler 生产计划处理器
type PlanningHandler struct {
	svc PlanningCalculator
}

// NewPlanningHandler 创建生产计划处理器
func NewPlanningHandler(svc PlanningCalculator) *PlanningHandler {
	return &PlanningHandler{svc: svc}
}

// Calculate 计算生产需求与成本
// POST /api/v1/planning/calculate
func (h *PlanningHandler) Calculate(c *gin.Context) {
	var req planning.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	report, err := h.svc.Calculate(c.Request.Context(), req)
	if err != nil {
		h.renderCalculateError(c, err)
		return
	}
	Success(c, report)
}

// CalculateFromOrders 按未发货订单的待生产数量计算
// POST /api/v1/planning/from-orders
func (h *PlanningHandler) CalculateFromOrders(c *gin.Context) {
	report, err := h.svc.CalculateFromOrders(c.Request.Context())
	if err != nil {
		h.renderCalculateError(c, err)
		return
	}
	Success(c, report)
}

// Export 导出计算结果为xlsx
// POST /api/v1/planning/export
func (h *PlanningHandler) Export(c *gin.Context) {
	var req planning.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	f, filename, err := h.svc.ExportPlan(c.Request.Context(), req)
	if err != nil {
		h.renderCalculateError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write xlsx: "+err.Error())
	}
}

// renderCalculateError 计算失败的错误映射。
// 整批无一可算返回400并附行级错误明细，其余按服务器错误处理。
func (h *PlanningHandler) renderCalculateError(c *gin.Context, err error) {
	var emptyPlan *planning.EmptyPlanError
	if errors.As(err, &emptyPlan) {
		ErrorData(c, 40010, emptyPlan.Error(), gin.H{
			"itemErrors": emptyPlan.ItemErrors,
		})
		return
	}
	InternalError(c, err.Error())
}
