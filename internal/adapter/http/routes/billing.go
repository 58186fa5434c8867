package routes

import (
	"foampro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathPayments  = "/payments"
	PathSync      = "/sync"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, syncHandler *handlers.SyncHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/calculate", estimateHandler.Calculate)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)

		// Lifecycle transitions. Each body may carry the version the caller read.
		estimates.POST("/:id/convert", estimateHandler.ConvertToWorkOrder)
		estimates.POST("/:id/schedule", estimateHandler.Schedule)
		estimates.POST("/:id/invoice", estimateHandler.Invoice)
		estimates.POST("/:id/financials", estimateHandler.RefreshFinancials)
		estimates.POST("/:id/archive", estimateHandler.Archive)
		estimates.POST("/:id/unarchive", estimateHandler.Unarchive)
		estimates.POST("/:id/send", estimateHandler.SendDocument)
		estimates.POST("/:id/push", syncHandler.PushEstimate)
	}

	rg.POST(PathSync, syncHandler.SyncDown)
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", paymentHandler.CreatePaymentByEstimateID)
		payments.GET("/:estimate_id", paymentHandler.GetPaymentByEstimateID)
	}
}
