package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/saborgourmet/reservation-service/config"
	"github.com/saborgourmet/reservation-service/internal/handler"
	"github.com/saborgourmet/reservation-service/internal/middleware"
	"github.com/saborgourmet/reservation-service/internal/repository"
	"github.com/saborgourmet/reservation-service/internal/seed"
	"github.com/saborgourmet/reservation-service/internal/service"
	"github.com/saborgourmet/reservation-service/pkg/database"
	"github.com/saborgourmet/reservation-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	if cfg.SeedData {
		if err := seed.Load(db); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	// RabbitMQ is optional: without it reservations still work, only the
	// reservation.* events are skipped
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq unavailable, continuing without events: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Services
	customerSvc := service.NewCustomerService(customerRepo)
	tableSvc := service.NewTableService(tableRepo)
	reservationSvc := service.NewReservationService(reservationRepo, tableRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewReservationHandler(reservationSvc, customerSvc, tableSvc).RegisterRoutes(e)
	handler.NewTableHandler(tableSvc).RegisterRoutes(e)
	handler.NewCustomerHandler(customerSvc).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
