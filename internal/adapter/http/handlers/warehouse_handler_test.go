package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"foampro/internal/adapter/http/handlers/mocks"
	"foampro/internal/domain/entities"
	"foampro/internal/domain/lifecycle"
	"foampro/internal/domain/warehouse"
	"foampro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWarehouseRouter(t *testing.T) (*gin.Engine, *mocks.MockIWarehouseUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWarehouseUseCase(ctrl)
	h := NewWarehouseHandler(uc)

	r := gin.New()
	r.POST("/v1/warehouse/items", h.SaveItem)
	r.POST("/v1/warehouse/items/:id/adjust", h.AdjustStock)
	r.GET("/v1/warehouse/low-stock", h.LowStock)
	r.POST("/v1/warehouse/equipment/:id/status", h.SetEquipmentStatus)
	r.GET("/v1/warehouse/purchase-orders/plan/:estimate_id", h.PlanPurchase)
	r.POST("/v1/warehouse/purchase-orders", h.CreatePurchaseOrder)
	r.POST("/v1/warehouse/purchase-orders/:id/receive", h.ReceivePurchaseOrder)
	r.GET("/v1/warehouse/usage", h.UsageLog)
	return r, uc
}

func TestWarehouseHandler_SaveItem(t *testing.T) {
	r, uc := newWarehouseRouter(t)
	uc.EXPECT().SaveItem(gomock.Any(), entities.WarehouseItem{Name: "Open cell set", Quantity: 4, Unit: "set"}).
		Return(entities.WarehouseItem{ID: "w1", Name: "Open cell set", Quantity: 4, Unit: "set"}, nil)

	w := doJSON(r, http.MethodPost, "/v1/warehouse/items", `{"name":"Open cell set","quantity":4,"unit":"set"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestWarehouseHandler_AdjustStock(t *testing.T) {
	t.Run("delta required", func(t *testing.T) {
		r, _ := newWarehouseRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/warehouse/items/w1/adjust", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		r, uc := newWarehouseRouter(t)
		uc.EXPECT().AdjustStock(gomock.Any(), "nope", -2.5).Return(entities.WarehouseItem{}, fmt.Errorf("%w: nope", warehouse.ErrItemNotFound))

		if w := doJSON(r, http.MethodPost, "/v1/warehouse/items/nope/adjust", `{"delta":-2.5}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWarehouseHandler_SetEquipmentStatus(t *testing.T) {
	r, uc := newWarehouseRouter(t)
	uc.EXPECT().SetEquipmentStatus(gomock.Any(), "g1", entities.EquipmentStatus("Lost")).
		Return(entities.EquipmentItem{}, warehouse.ErrInvalidEquipmentStatus)

	if w := doJSON(r, http.MethodPost, "/v1/warehouse/equipment/g1/status", `{"status":"Lost"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWarehouseHandler_PlanPurchase(t *testing.T) {
	r, uc := newWarehouseRouter(t)
	uc.EXPECT().PlanPurchase(gomock.Any(), "e1").Return(usecase.PurchasePlan{
		EstimateID: "e1",
		Lines:      []entities.PurchaseOrderLine{{Description: "Open cell set", Quantity: 2, UnitCost: 1800, Total: 3600}},
		Total:      3600,
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/warehouse/purchase-orders/plan/e1", "")
	var body usecase.PurchasePlan
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body.Total != 3600 || len(body.Lines) != 1 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestWarehouseHandler_PurchaseOrders(t *testing.T) {
	t.Run("vendor required", func(t *testing.T) {
		r, _ := newWarehouseRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/warehouse/purchase-orders", `{"items":[]}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newWarehouseRouter(t)
		uc.EXPECT().CreatePurchaseOrder(gomock.Any(), gomock.Any()).
			Return(entities.PurchaseOrder{ID: "po1", VendorName: "FoamCo", Status: entities.PurchaseOrderOrdered}, nil)

		if w := doJSON(r, http.MethodPost, "/v1/warehouse/purchase-orders", `{"vendorName":"FoamCo","items":[{"description":"Open cell set","quantity":1}]}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("receive twice", func(t *testing.T) {
		r, uc := newWarehouseRouter(t)
		uc.EXPECT().ReceivePurchaseOrder(gomock.Any(), "po1").
			Return(usecase.ReceiveResult{}, fmt.Errorf("%w: purchase order already received", lifecycle.ErrPrecondition))

		if w := doJSON(r, http.MethodPost, "/v1/warehouse/purchase-orders/po1/receive", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("receive unknown", func(t *testing.T) {
		r, uc := newWarehouseRouter(t)
		uc.EXPECT().ReceivePurchaseOrder(gomock.Any(), "po9").Return(usecase.ReceiveResult{}, usecase.ErrPurchaseOrderNotFound)

		if w := doJSON(r, http.MethodPost, "/v1/warehouse/purchase-orders/po9/receive", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWarehouseHandler_UsageLog(t *testing.T) {
	r, uc := newWarehouseRouter(t)
	uc.EXPECT().UsageLog(gomock.Any(), "e1").Return([]entities.MaterialUsageLogEntry{{ID: "u1", JobID: "e1", Quantity: 1.5}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/warehouse/usage?job_id=e1", "")
	var body []entities.MaterialUsageLogEntry
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || len(body) != 1 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
