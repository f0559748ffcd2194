package routes

import (
	"tailoring_app/internal/adapter/http/handlers"
	"tailoring_app/internal/adapter/http/middleware"
	"tailoring_app/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathCustomers = "/customers"

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Register)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
		customers.POST("/:id/restore", middleware.RequireRole(entities.RoleAdmin), customerHandler.Restore)
		customers.POST("/:id/measurements", customerHandler.AddMeasurement)
		customers.POST("/:id/notes", customerHandler.AddNote)
	}
}
