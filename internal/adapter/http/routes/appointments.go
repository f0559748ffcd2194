package routes

import (
	"tailoring_app/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAppointments = "/appointments"

func addAppointmentRoutes(rg *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler) {
	nested := rg.Group(PathCustomers + "/:id" + PathAppointments)
	{
		nested.POST("", appointmentHandler.Schedule)
		nested.GET("", appointmentHandler.ListByCustomer)
		nested.PUT("/:appointmentId", appointmentHandler.Reschedule)
		nested.DELETE("/:appointmentId", appointmentHandler.Cancel)
		nested.POST("/:appointmentId/complete", appointmentHandler.Complete)
		nested.PATCH("/:appointmentId/notes", appointmentHandler.UpdateNotes)
	}

	rg.GET(PathAppointments, appointmentHandler.List)
}
