package routes

import (
	"log"

	_ "tailoring_app/docs" // swagger definitions
	"tailoring_app/internal/adapter/http/handlers"
	"tailoring_app/internal/adapter/http/middleware"
	"tailoring_app/internal/infrastructure/auth"
	"tailoring_app/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps carries everything the router needs, wired by the caller.
type Deps struct {
	Auth         usecase.IAuthUseCase
	Customers    usecase.ICustomerUseCase
	Appointments usecase.IAppointmentUseCase
	WorkOrders   usecase.IWorkOrderUseCase
	Tokens       *auth.TokenManager
}

// NewRouter builds the gin engine with all middlewares and routes attached.
func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := handlers.NewAuthHandler(deps.Auth)
	customerHandler := handlers.NewCustomerHandler(deps.Customers)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Appointments)
	workOrderHandler := handlers.NewWorkOrderHandler(deps.WorkOrders)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(deps.Tokens))
	addCustomerRoutes(protected, customerHandler)
	addAppointmentRoutes(protected, appointmentHandler)
	addWorkOrderRoutes(protected, workOrderHandler)

	return router
}
