package main

import (
	"log"

	"github.com/kev-n-dev/sky-way/config"
	"github.com/kev-n-dev/sky-way/internal/consumer"
	"github.com/kev-n-dev/sky-way/internal/handler"
	"github.com/kev-n-dev/sky-way/internal/middleware"
	"github.com/kev-n-dev/sky-way/internal/repository"
	"github.com/kev-n-dev/sky-way/internal/service"
	"github.com/kev-n-dev/sky-way/internal/validation"
	"github.com/kev-n-dev/sky-way/pkg/auth"
	"github.com/kev-n-dev/sky-way/pkg/cache"
	"github.com/kev-n-dev/sky-way/pkg/database"
	"github.com/kev-n-dev/sky-way/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional redis cache for the airport directory
	var airportCache service.AirportCache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.AirportCacheTTL)
		defer redisCache.Close()
		airportCache = redisCache
	}

	// Optional RabbitMQ: booking events out, confirmation notifications in
	var producer service.Producer
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("WARNING: rabbitmq unavailable, booking events disabled: %v", err)
		} else {
			defer pub.Close()
			producer = pub

			mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
			if err != nil {
				log.Printf("WARNING: failed to connect notification consumer: %v", err)
			} else {
				defer mqConsumer.Close()
				msgs, err := mqConsumer.Consume()
				if err != nil {
					log.Printf("WARNING: failed to start consuming: %v", err)
				} else {
					consumer.NewNotificationConsumer().Start(msgs)
				}
			}
		}
	}

	// Repositories
	airportRepo := repository.NewAirportRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	historyRepo := repository.NewSearchHistoryRepository(db)

	// Services
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	flightSvc := service.NewFlightService(flightRepo, airportRepo, airportCache)
	searchSvc := service.NewSearchService(historyRepo, flightSvc)
	userSvc := service.NewUserService(userRepo, tokens)
	bookingSvc := service.NewBookingService(bookingRepo, flightRepo, userRepo, flightSvc, producer)

	// Echo
	e := echo.New()
	e.Validator = validation.New()
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
		return c.JSON(200, map[string]string{"status": "ok", "service": "sky-way"})
	})

	requireAuth := middleware.RequireAuth(tokens)
	handler.NewAuthHandler(userSvc).RegisterRoutes(e)
	handler.NewUserHandler(userSvc).RegisterRoutes(e, requireAuth)
	handler.NewFlightHandler(flightSvc, searchSvc).RegisterRoutes(e, requireAuth)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, requireAuth)

	log.Printf("SkyWay backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
