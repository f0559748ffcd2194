package main

import (
	"context"
	"log"

	"tailoring_app/internal/adapter/http/routes"
	"tailoring_app/internal/adapter/persistence/repository"
	"tailoring_app/internal/config"
	"tailoring_app/internal/infrastructure/auth"
	"tailoring_app/internal/infrastructure/database"
	"tailoring_app/internal/usecase"
)

// @title           Tailoring Shop API
// @version         1.0
// @description     Tailoring shop management: customers, fitting appointments and garment work orders.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("Configure token manager: %v", err)
	}

	userRepo := repository.NewUserPostgresRepository(db)
	customerRepo := repository.NewCustomerPostgresRepository(db)
	appointmentRepo := repository.NewAppointmentPostgresRepository(db)
	workOrderRepo := repository.NewWorkOrderPostgresRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, customerRepo)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, customerRepo, appointmentRepo)

	if cfg.Auth.AdminPassword != "" {
		if err := authUseCase.EnsureAdmin(context.Background(), cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			log.Fatalf("Seed admin user: %v", err)
		}
	}

	router := routes.NewRouter(routes.Deps{
		Auth:         authUseCase,
		Customers:    customerUseCase,
		Appointments: appointmentUseCase,
		WorkOrders:   workOrderUseCase,
		Tokens:       tokens,
	})

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
