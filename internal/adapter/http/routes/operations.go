package routes

import (
	"foampro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCrew      = "/crew"
	PathCustomers = "/customers"
	PathWarehouse = "/warehouse"
	PathAccounts  = "/accounts"
)

func addCrewRoutes(rg *gin.RouterGroup, h *handlers.CrewHandler) {
	crew := rg.Group(PathCrew)
	{
		crew.GET("/jobs", h.ListJobs)
		crew.GET("/timer", h.GetTimer)
		crew.POST("/jobs/:id/start", h.StartJob)
		crew.POST("/jobs/:id/stop", h.StopTimer)
		crew.POST("/jobs/:id/complete", h.CompleteJob)
		crew.POST("/jobs/:id/cancel-completion", h.CancelCompletion)
		crew.POST("/jobs/:id/photos", h.UploadPhoto)
		crew.POST("/sync", h.Sync)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.POST("/:id/archive", h.ArchiveCustomer)
		customers.GET("/:id/logs", h.ListLogs)
		customers.POST("/:id/logs", h.AddLogEntry)
		customers.GET("/:id/estimates", h.ListEstimates)
	}
}

func addWarehouseRoutes(rg *gin.RouterGroup, h *handlers.WarehouseHandler) {
	warehouse := rg.Group(PathWarehouse)
	{
		warehouse.GET("/items", h.ListItems)
		warehouse.POST("/items", h.SaveItem)
		warehouse.POST("/items/:id/adjust", h.AdjustStock)
		warehouse.GET("/low-stock", h.LowStock)

		warehouse.GET("/equipment", h.ListEquipment)
		warehouse.POST("/equipment", h.SaveEquipment)
		warehouse.POST("/equipment/:id/status", h.SetEquipmentStatus)

		warehouse.GET("/purchase-orders", h.ListPurchaseOrders)
		warehouse.POST("/purchase-orders", h.CreatePurchaseOrder)
		warehouse.GET("/purchase-orders/plan/:estimate_id", h.PlanPurchase)
		warehouse.POST("/purchase-orders/:id/receive", h.ReceivePurchaseOrder)

		warehouse.GET("/usage", h.UsageLog)
	}
}

func addAccountRoutes(rg *gin.RouterGroup, h *handlers.AccountHandler) {
	rg.POST(PathAccounts+"/notify", h.NotifyAccountCreated)
}
