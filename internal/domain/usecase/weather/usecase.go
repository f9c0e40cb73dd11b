package weather

import (
	"context"

	"forecast-api/internal/domain/entity"
)

type UseCase interface {
	// GetForecast fetches the upstream forecast for city and buckets it by calendar date.
	// Failures are always *Error.
	GetForecast(ctx context.Context, city string) (entity.DailyForecast, error)
}
