package handlers

import (
	"errors"
	"net/http"

	request "foampro/internal/adapter/http/dto/request"
	"foampro/internal/domain/warehouse"
	"foampro/internal/usecase"
	"foampro/pkg"

	"github.com/gin-gonic/gin"
)

// WarehouseHandler exposes stock, equipment and purchase orders.
type WarehouseHandler struct {
	usecase usecase.IWarehouseUseCase
}

func NewWarehouseHandler(uc usecase.IWarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{usecase: uc}
}

func (h *WarehouseHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.ListItems(c.Request.Context())
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// SaveItem godoc
// @Summary Create or replace a warehouse item
// @Tags warehouse
// @Accept json
// @Produce json
// @Param body body request.WarehouseItemRequest true "Item"
// @Success 200 {object} entities.WarehouseItem
// @Router /warehouse/items [post]
func (h *WarehouseHandler) SaveItem(c *gin.Context) {
	var payload request.WarehouseItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	it, err := h.usecase.SaveItem(c.Request.Context(), payload.Item())
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, it)
}

// AdjustStock godoc
// @Summary Add a signed delta to an item's stock
// @Tags warehouse
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param body body request.AdjustStockRequest true "Delta"
// @Success 200 {object} entities.WarehouseItem
// @Router /warehouse/items/{id}/adjust [post]
func (h *WarehouseHandler) AdjustStock(c *gin.Context) {
	var payload request.AdjustStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	it, err := h.usecase.AdjustStock(c.Request.Context(), c.Param("id"), *payload.Delta)
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *WarehouseHandler) LowStock(c *gin.Context) {
	items, err := h.usecase.LowStock(c.Request.Context())
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *WarehouseHandler) ListEquipment(c *gin.Context) {
	list, err := h.usecase.ListEquipment(c.Request.Context())
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *WarehouseHandler) SaveEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	e, err := h.usecase.SaveEquipment(c.Request.Context(), payload.Equipment())
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *WarehouseHandler) SetEquipmentStatus(c *gin.Context) {
	var payload request.EquipmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	e, err := h.usecase.SetEquipmentStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, e)
}

// PlanPurchase godoc
// @Summary Suggested purchase order for a job
// @Tags warehouse
// @Produce json
// @Param estimate_id path string true "Estimate id"
// @Success 200 {object} usecase.PurchasePlan
// @Router /warehouse/purchase-orders/plan/{estimate_id} [get]
func (h *WarehouseHandler) PlanPurchase(c *gin.Context) {
	plan, err := h.usecase.PlanPurchase(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *WarehouseHandler) ListPurchaseOrders(c *gin.Context) {
	list, err := h.usecase.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *WarehouseHandler) CreatePurchaseOrder(c *gin.Context) {
	var payload request.PurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	po, err := h.usecase.CreatePurchaseOrder(c.Request.Context(), payload.Order())
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *WarehouseHandler) ReceivePurchaseOrder(c *gin.Context) {
	res, err := h.usecase.ReceivePurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *WarehouseHandler) UsageLog(c *gin.Context) {
	entries, err := h.usecase.UsageLog(c.Request.Context(), c.Query("job_id"))
	if err != nil {
		writeError(c, mapWarehouseError(err))
		return
	}
	c.JSON(http.StatusOK, entries)
}

func mapWarehouseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidEquipmentID),
		errors.Is(err, usecase.ErrInvalidPurchaseOrderID), errors.Is(err, usecase.ErrInvalidVendor):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, warehouse.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Warehouse item not found", http.StatusNotFound)
	case errors.Is(err, warehouse.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPurchaseOrderNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_NOT_FOUND", "Purchase order not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
