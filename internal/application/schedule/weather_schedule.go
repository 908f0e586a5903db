package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-now/internal/domain/usecase/weather"
	"weather-now/pkg/log"
	"weather-now/pkg/msg"
)

// WeatherSchedulerConfig holds configuration for the weather scheduler
type WeatherSchedulerConfig struct {
	// CronExpression triggers a refresh of the last loaded weather. Empty disables the refresh.
	CronExpression string
	// DefaultCity is loaded once on start. Empty disables it.
	DefaultCity string
}

// WeatherScheduler loads the default city on start and keeps the loaded weather fresh
type WeatherScheduler struct {
	cron    *cron.Cron
	useCase weather.UseCase
	config  WeatherSchedulerConfig
	ctx     context.Context
}

func NewWeatherScheduler(useCase weather.UseCase, config WeatherSchedulerConfig) *WeatherScheduler {
	return &WeatherScheduler{
		cron:    cron.New(),
		useCase: useCase,
		config:  config,
		ctx:     context.Background(),
	}
}

// InitWeatherScheduleTasks starts the default city load in the background and registers the refresh task.
// Scheduled runs use ctx, so cancelling it aborts in-flight refreshes.
func (s *WeatherScheduler) InitWeatherScheduleTasks(ctx context.Context) error {
	s.ctx = ctx

	if city := strings.TrimSpace(s.config.DefaultCity); city != "" {
		go s.LoadDefaultCity(city)
	}

	cronExpression := strings.TrimSpace(s.config.CronExpression)
	if cronExpression == "" {
		return nil
	}

	if _, err := s.cron.AddFunc(cronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("weather.schedule.invalid-cron", err))
		return fmt.Errorf("invalid refresh cron expression %q: %w", cronExpression, err)
	}

	s.cron.Start()
	log.Info(msg.GetMessage("weather.schedule.started", cronExpression))
	return nil
}

// LoadDefaultCity loads the configured city so clients find weather on their first request
func (s *WeatherScheduler) LoadDefaultCity(city string) {
	log.Info(msg.GetMessage("weather.schedule.default-city", city))
	s.useCase.LoadByCity(s.ctx, city)
}

// ExecuteScheduledTask refreshes the last loaded weather
func (s *WeatherScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("weather.schedule.triggered"), zap.String("request_id", requestID))

	if _, refreshed := s.useCase.Refresh(s.ctx); !refreshed {
		log.Info(msg.GetMessage("weather.schedule.skipped"), zap.String("request_id", requestID))
	}
}

// Stop gracefully stops the scheduler, waiting for a running refresh to finish
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		log.Info(msg.GetMessage("weather.schedule.stopped"))
	}
}
