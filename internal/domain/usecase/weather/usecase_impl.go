package weather

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weather-now/internal/domain/entity"
	"weather-now/internal/domain/gateway/api"
	"weather-now/internal/domain/gateway/geo"
	"weather-now/pkg/log"
	"weather-now/pkg/metrics"
	"weather-now/pkg/msg"
)

const (
	kindCity     = "city"
	kindLocation = "location"
)

// Options tunes the coordinator
type Options struct {
	PositionOptions entity.PositionOptions
}

// DefaultOptions asks for a high accuracy fix within 10 seconds, accepting one up to 10 minutes old
func DefaultOptions() Options {
	return Options{
		PositionOptions: entity.PositionOptions{
			HighAccuracy: true,
			Timeout:      10 * time.Second,
			MaximumAge:   10 * time.Minute,
		},
	}
}

type weatherUseCase struct {
	gateway    api.WeatherGateway
	geolocator geo.GeolocationGateway
	opts       Options

	mu          sync.RWMutex
	state       entity.ViewState
	seq         uint64
	lastLocator *entity.Locator
	subscribers map[int]chan entity.ViewState
	nextSubID   int
}

// NewWeatherUseCase creates the view state coordinator. A nil geolocator means the client cannot provide its position.
func NewWeatherUseCase(gateway api.WeatherGateway, geolocator geo.GeolocationGateway, opts Options) UseCase {
	return &weatherUseCase{
		gateway:     gateway,
		geolocator:  geolocator,
		opts:        opts,
		state:       entity.NewViewState(),
		subscribers: make(map[int]chan entity.ViewState),
	}
}

// LoadByCity validates the city and fetches its weather and forecast in parallel
func (uc *weatherUseCase) LoadByCity(ctx context.Context, city string) entity.ViewState {
	city = strings.TrimSpace(city)
	if city == "" {
		uc.update(func(state *entity.ViewState) {
			state.Error = message(msg.GetMessage("weather.error.empty-city"))
		})
		return uc.State()
	}

	seq := uc.begin()
	uc.load(ctx, kindCity, entity.CityLocator(city), seq, time.Now())
	return uc.State()
}

// LoadByLocation resolves the position and fetches weather for its coordinates.
// Geolocation failures are reported with the message of their error code.
func (uc *weatherUseCase) LoadByLocation(ctx context.Context) entity.ViewState {
	if uc.geolocator == nil {
		uc.update(func(state *entity.ViewState) {
			state.Error = message(msg.GetMessage("geolocation.error.unsupported"))
		})
		return uc.State()
	}

	start := time.Now()
	seq := uc.begin()

	position, err := uc.geolocator.CurrentPosition(ctx, uc.opts.PositionOptions)
	if err != nil {
		requestID := uuid.NewString()
		log.Warn(msg.GetMessage("weather.load.fail", msg.GetMessage("weather.location.current")),
			zap.String("request_id", requestID),
			zap.Uint64("seq", seq),
			zap.Error(err))

		outcome := metrics.OutcomeFailure
		if !uc.settle(seq, func(state *entity.ViewState) { fail(state, positionErrorMessage(err)) }) {
			outcome = metrics.OutcomeStale
		}
		metrics.ObserveLoad(kindLocation, outcome, time.Since(start).Seconds())
		return uc.State()
	}

	locator := entity.CoordinatesLocator(position.Coordinates.Latitude, position.Coordinates.Longitude)
	uc.load(ctx, kindLocation, locator, seq, start)
	return uc.State()
}

// Refresh reloads the locator of the last successful load
func (uc *weatherUseCase) Refresh(ctx context.Context) (entity.ViewState, bool) {
	uc.mu.RLock()
	last := uc.lastLocator
	uc.mu.RUnlock()

	if last == nil {
		return uc.State(), false
	}

	kind := kindCity
	if last.IsCoordinates() {
		kind = kindLocation
	}

	seq := uc.begin()
	uc.load(ctx, kind, *last, seq, time.Now())
	return uc.State(), true
}

func (uc *weatherUseCase) ClearError() {
	uc.update(func(state *entity.ViewState) {
		state.Error = nil
	})
}

func (uc *weatherUseCase) State() entity.ViewState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state.Clone()
}

// Subscribe registers a listener. The channel holds only the most recent state, so slow readers skip intermediate ones.
func (uc *weatherUseCase) Subscribe() (<-chan entity.ViewState, func()) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := uc.nextSubID
	uc.nextSubID++
	ch := make(chan entity.ViewState, 1)
	uc.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			uc.mu.Lock()
			defer uc.mu.Unlock()
			delete(uc.subscribers, id)
			close(ch)
		})
	}
	return ch, unsubscribe
}

// load runs both fetches for the locator and settles the state of call seq
func (uc *weatherUseCase) load(ctx context.Context, kind string, locator entity.Locator, seq uint64, start time.Time) {
	requestID := uuid.NewString()
	log.Info(msg.GetMessage("weather.load.start", locator.String()),
		zap.String("request_id", requestID),
		zap.Uint64("seq", seq))

	var (
		current  *entity.CurrentWeather
		forecast []entity.ForecastDay
		g        errgroup.Group
	)

	g.Go(func() error {
		var err error
		current, err = uc.gateway.FetchCurrent(ctx, locator)
		return err
	})

	g.Go(func() error {
		var err error
		forecast, err = uc.gateway.FetchForecast(ctx, locator)
		return err
	})

	err := g.Wait()

	applied := uc.settle(seq, func(state *entity.ViewState) {
		if err != nil {
			fail(state, errorMessage(err))
			return
		}
		state.Weather = current
		state.Forecast = forecast
		if state.Forecast == nil {
			state.Forecast = []entity.ForecastDay{}
		}
		uc.lastLocator = &locator
	})

	outcome := metrics.OutcomeSuccess
	switch {
	case !applied:
		outcome = metrics.OutcomeStale
		log.Info(msg.GetMessage("weather.load.stale", locator.String()),
			zap.String("request_id", requestID),
			zap.Uint64("seq", seq))
	case err != nil:
		outcome = metrics.OutcomeFailure
		log.Warn(msg.GetMessage("weather.load.fail", locator.String()),
			zap.String("request_id", requestID),
			zap.Uint64("seq", seq),
			zap.Error(err))
	default:
		log.Info(msg.GetMessage("weather.load.success", locator.String()),
			zap.String("request_id", requestID),
			zap.Uint64("seq", seq),
			zap.Int("forecast_days", len(forecast)))
	}
	metrics.ObserveLoad(kind, outcome, time.Since(start).Seconds())
}

// begin issues a new sequence number and marks the state as loading
func (uc *weatherUseCase) begin() uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.seq++
	uc.state.Loading = true
	uc.state.Error = nil
	uc.publish()
	return uc.seq
}

// settle applies fn and clears loading when seq is still the latest call. Stale calls change nothing.
func (uc *weatherUseCase) settle(seq uint64, fn func(state *entity.ViewState)) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq != uc.seq {
		return false
	}
	fn(&uc.state)
	uc.state.Loading = false
	uc.publish()
	return true
}

func (uc *weatherUseCase) update(fn func(state *entity.ViewState)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	fn(&uc.state)
	uc.publish()
}

// publish must be called with mu held
func (uc *weatherUseCase) publish() {
	if len(uc.subscribers) == 0 {
		return
	}
	snapshot := uc.state.Clone()
	for _, ch := range uc.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

func fail(state *entity.ViewState, text string) {
	state.Error = message(text)
	state.Weather = nil
	state.Forecast = []entity.ForecastDay{}
}

func positionErrorMessage(err error) string {
	var positionErr *entity.PositionError
	if !errors.As(err, &positionErr) {
		return errorMessage(err)
	}

	switch positionErr.Code {
	case entity.PositionPermissionDenied:
		return msg.GetMessage("geolocation.error.permission-denied")
	case entity.PositionUnavailable:
		return msg.GetMessage("geolocation.error.unavailable")
	case entity.PositionTimeout:
		return msg.GetMessage("geolocation.error.timeout")
	default:
		return msg.GetMessage("geolocation.error.unknown")
	}
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return msg.GetMessage("weather.error.generic")
	}
	return err.Error()
}

func message(text string) *string {
	return &text
}
