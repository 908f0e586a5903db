package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-now/configs"
	"weather-now/docs"
	"weather-now/internal/application/controller"
	"weather-now/internal/application/middleware"
	"weather-now/internal/application/schedule"
	"weather-now/internal/domain/usecase/health"
	"weather-now/internal/domain/usecase/weather"
	"weather-now/internal/infra/cache"
	"weather-now/internal/infra/provider"
	"weather-now/pkg/log"
	"weather-now/pkg/msg"
	"weather-now/pkg/redis"
	"weather-now/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

// @title weather-now API
// @version 1.0
// @description Current weather and five day forecast by city name or client position, backed by OpenWeatherMap.
// @BasePath /weather-now
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	redisClient, err := cache.NewRedisClient(ctx)
	if err != nil {
		log.Fatal("Fail to connect Redis", zap.Error(err))
	}

	var cacheChecker health.CacheHealthChecker
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		cacheChecker = redis.NewHealthChecker(redisClient)
	}

	// Init Gateways
	weatherGateway, err := provider.NewWeatherGateway()
	if err != nil {
		log.Fatal("Fail to create weather gateway", zap.Error(err))
	}

	geolocator, err := provider.NewGeolocationGateway(redisClient)
	if err != nil {
		log.Fatal("Fail to create geolocation gateway", zap.Error(err))
	}

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, geolocator, weather.DefaultOptions())
	healthUseCase := health.NewHealthUseCase(configs.Env.ApplicationName, cacheChecker, geolocator)

	// Init Routes
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	api := e.Group(configs.Env.ContextPath)
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(api, weatherUseCase, weatherGateway.IconURL).InitWeatherRoutes()

	docs.SwaggerInfo.BasePath = configs.Env.ContextPath
	api.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Init Schedule
	weatherScheduler := schedule.NewWeatherScheduler(weatherUseCase, schedule.WeatherSchedulerConfig{
		CronExpression: resource.GetString("app.weather.refresh-cron"),
		DefaultCity:    resource.GetString("app.weather.default-city"),
	})
	if err := weatherScheduler.InitWeatherScheduleTasks(ctx); err != nil {
		log.Fatal("Fail to start weather scheduler", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Fail to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop"))

	weatherScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Fail to shutdown server", zap.Error(err))
	}
}
