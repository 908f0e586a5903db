package geo

import (
	"context"
	"errors"

	"weather-now/internal/domain/entity"
	"weather-now/internal/domain/model/external"
	"weather-now/pkg/http"
)

const (
	ipLookupPath   = "/json/"
	ipLookupFields = "status,message,lat,lon,city,countryCode"
	// city level resolution, in meters
	ipAccuracy = 5000
)

type ipProvider struct {
	httpClient *http.Client
}

// NewIPProvider resolves the position of the host's public IP address through ip-api.com
func NewIPProvider(baseURL string, clientOptions http.ClientOptions) PositionProvider {
	return &ipProvider{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

func (p *ipProvider) Locate(ctx context.Context, _ bool) (entity.Position, error) {
	response := &external.IPLocationResponse{}

	_, _, _, err := p.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(ipLookupPath).
		WithQueryParams(map[string]string{"fields": ipLookupFields}).
		WithSuccessResp(response).
		Execute()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return entity.Position{}, err
		}
		return entity.Position{}, entity.NewPositionError(entity.PositionUnavailable, err.Error())
	}

	if response.Status != "success" {
		return entity.Position{}, entity.NewPositionError(entity.PositionUnavailable, response.Message)
	}

	return entity.Position{
		Coordinates: entity.Coordinates{Latitude: response.Lat, Longitude: response.Lon},
		Accuracy:    ipAccuracy,
	}, nil
}
