package api

import (
	"context"
	"fmt"

	"forecast-api/internal/domain/model"
	"forecast-api/internal/domain/model/external"
)

// WeatherGateway defines the interface for forecast calls to the upstream weather API
type WeatherGateway interface {
	// GetForecast fetches the 3 hour forecast list for a city.
	// A non-2xx answer is returned as *UpstreamStatusError.
	GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error)

	// Health reports whether the gateway is configured to reach the upstream. It performs no call.
	Health() model.ComponentHealthStatus
}

// UpstreamStatusError carries the status the upstream answered with.
type UpstreamStatusError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream answered status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream answered status %d: %s", e.StatusCode, e.Message)
}
