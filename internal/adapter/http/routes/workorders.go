package routes

import (
	"tailoring_app/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWorkOrders = "/workorders"

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler) {
	nested := rg.Group(PathCustomers + "/:id" + PathWorkOrders)
	{
		nested.POST("", workOrderHandler.Create)
		nested.GET("", workOrderHandler.ListByCustomer)
		nested.GET("/:workOrderId", workOrderHandler.GetByID)
		nested.DELETE("/:workOrderId", workOrderHandler.Cancel)
		nested.GET("/:workOrderId/summary", workOrderHandler.Summary)
		nested.POST("/:workOrderId/items", workOrderHandler.AddItem)
		nested.PUT("/:workOrderId/items/:description", workOrderHandler.UpdateItemQuantity)
		nested.DELETE("/:workOrderId/items/:description", workOrderHandler.RemoveItem)
		nested.POST("/:workOrderId/start", workOrderHandler.Start)
		nested.POST("/:workOrderId/complete", workOrderHandler.Complete)
		nested.POST("/:workOrderId/discount", workOrderHandler.SetDiscount)
		nested.DELETE("/:workOrderId/discount", workOrderHandler.ClearDiscount)
	}

	rg.GET(PathWorkOrders, workOrderHandler.List)
}
