package weather

import (
	"context"

	"weather-now/internal/domain/entity"
)

type UseCase interface {
	// LoadByCity fetches current weather and forecast for a city name and returns the settled state
	LoadByCity(ctx context.Context, city string) entity.ViewState

	// LoadByLocation resolves the client position and fetches weather for its coordinates
	LoadByLocation(ctx context.Context) entity.ViewState

	// Refresh re-runs the last successful load. It reports false when nothing was loaded yet.
	Refresh(ctx context.Context) (entity.ViewState, bool)

	// ClearError resets the error message, leaving the rest of the state untouched
	ClearError()

	// State returns a snapshot of the current view state
	State() entity.ViewState

	// Subscribe returns a channel receiving the latest state after every change and a function to stop receiving
	Subscribe() (<-chan entity.ViewState, func())
}
