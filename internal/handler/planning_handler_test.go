package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/planning"
	"github.com/kwamkid/joolz-factory-sub003/internal/testutil"
	"github.com/xuri/excelize/v2"
)

// stubPlanner 固定返回值的计算服务替身
type stubPlanner struct {
	report *planning.PlanReport
	err    error
}

func (s *stubPlanner) Calculate(ctx context.Context, req planning.PlanRequest) (*planning.PlanReport, error) {
	return s.report, s.err
}

func (s *stubPlanner) CalculateFromOrders(ctx context.Context) (*planning.PlanReport, error) {
	return s.report, s.err
}

func (s *stubPlanner) ExportPlan(ctx context.Context, req planning.PlanRequest) (*excelize.File, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return excelize.NewFile(), "plan.xlsx", nil
}

func setupPlanningRouter(stub *stubPlanner) *gin.Engine {
	r := testutil.SetupRouter()
	h := NewPlanningHandler(stub)
	group := testutil.AuthGroup(r, "/api/v1/planning")
	group.POST("/calculate", h.Calculate)
	group.POST("/from-orders", h.CalculateFromOrders)
	group.POST("/export", h.Export)
	return r
}

func TestPlanningCalculate_Success(t *testing.T) {
	stub := &stubPlanner{
		report: &planning.PlanReport{
			Summary: []planning.ProductCostLine{
				{SellableProductCode: "JC-ORANGE-1L", TotalQuantity: 20, TotalCost: 340.38},
			},
			Totals: planning.Totals{TotalBottles: 20, TotalCost: 340.38},
		},
	}
	r := setupPlanningRouter(stub)

	body := planning.PlanRequest{
		Items: []planning.PlanningItem{
			{SellableProductID: "p1", Quantity: 20},
		},
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/planning/calculate", body, testutil.DefaultTestToken())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 0 {
		t.Fatalf("code = %v, want 0", resp["code"])
	}
	data := resp["data"].(map[string]interface{})
	summary := data["summary"].([]interface{})
	if len(summary) != 1 {
		t.Fatalf("summary lines = %d, want 1", len(summary))
	}
}

func TestPlanningCalculate_EmptyPlanReturns400(t *testing.T) {
	stub := &stubPlanner{
		err: &planning.EmptyPlanError{
			ItemErrors: []planning.ItemError{
				{Index: 0, SellableProductID: "missing", Kind: planning.ErrKindProductNotFound, Message: "sellable product not found"},
			},
		},
	}
	r := setupPlanningRouter(stub)

	body := planning.PlanRequest{
		Items: []planning.PlanningItem{
			{SellableProductID: "missing", Quantity: 5},
		},
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/planning/calculate", body, testutil.DefaultTestToken())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40010 {
		t.Fatalf("code = %v, want 40010", resp["code"])
	}
	data := resp["data"].(map[string]interface{})
	itemErrors := data["itemErrors"].([]interface{})
	if len(itemErrors) != 1 {
		t.Fatalf("itemErrors = %d, want 1", len(itemErrors))
	}
	first := itemErrors[0].(map[string]interface{})
	if first["kind"] != planning.ErrKindProductNotFound {
		t.Fatalf("kind = %v, want %s", first["kind"], planning.ErrKindProductNotFound)
	}
}

func TestPlanningCalculate_InvalidJSONReturns400(t *testing.T) {
	r := setupPlanningRouter(&stubPlanner{report: &planning.PlanReport{}})

	// items行缺少必填的sellable_product_id
	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"quantity": 5},
		},
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/planning/calculate", body, testutil.DefaultTestToken())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40000 {
		t.Fatalf("code = %v, want 40000", resp["code"])
	}
}

func TestPlanningCalculate_RequiresAuth(t *testing.T) {
	r := setupPlanningRouter(&stubPlanner{report: &planning.PlanReport{}})

	body := planning.PlanRequest{
		Items: []planning.PlanningItem{
			{SellableProductID: "p1", Quantity: 1},
		},
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/planning/calculate", body, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401, body: %s", w.Code, w.Body.String())
	}
}

func TestPlanningFromOrders_Success(t *testing.T) {
	stub := &stubPlanner{
		report: &planning.PlanReport{
			Totals: planning.Totals{TotalBottles: 12},
		},
	}
	r := setupPlanningRouter(stub)

	w := testutil.DoRequest(r, "POST", "/api/v1/planning/from-orders", nil, testutil.DefaultTestToken())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	totals := data["totals"].(map[string]interface{})
	if totals["totalBottles"].(float64) != 12 {
		t.Fatalf("totalBottles = %v, want 12", totals["totalBottles"])
	}
}

func TestPlanningExport_SetsAttachmentHeaders(t *testing.T) {
	r := setupPlanningRouter(&stubPlanner{report: &planning.PlanReport{}})

	body := planning.PlanRequest{
		Items: []planning.PlanningItem{
			{SellableProductID: "p1", Quantity: 1},
		},
	}
	w := testutil.DoRequest(r, "POST", "/api/v1/planning/export", body, testutil.DefaultTestToken())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type = %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); got == "" {
		t.Fatal("missing Content-Disposition header")
	}
	if w.Body.Len() == 0 {
		t.Fatal("empty response body, expected xlsx payload")
	}
}
