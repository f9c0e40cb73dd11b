package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/gateway/api"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
	"forecast-api/pkg/requestid"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
	}
}

// GetForecast fetches and normalizes the forecast for city.
// Any non-2xx upstream status is reported as KindNotFound.
func (uc *weatherUseCase) GetForecast(ctx context.Context, city string) (entity.DailyForecast, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, invalidRequest(MessageCityRequired)
	}

	forecast, err := uc.apiGateway.GetForecast(ctx, city)
	if err != nil {
		var statusErr *api.UpstreamStatusError
		if errors.As(err, &statusErr) {
			log.Warn(msg.GetMessage("weather.upstream-status", statusErr.StatusCode, city),
				zap.String("request_id", requestid.FromContext(ctx)),
				zap.String("city", city),
				zap.Int("upstream_status", statusErr.StatusCode),
				zap.String("upstream_message", statusErr.Message))
			return nil, notFound(err)
		}

		log.Error(msg.GetMessage("weather.upstream-fail", city, err),
			zap.String("request_id", requestid.FromContext(ctx)),
			zap.String("city", city),
			zap.Error(err))
		return nil, internal(err)
	}

	daily, err := Normalize(forecast)
	if err != nil {
		log.Error(msg.GetMessage("weather.upstream-fail", city, err),
			zap.String("request_id", requestid.FromContext(ctx)),
			zap.String("city", city),
			zap.Error(err))
		return nil, internal(fmt.Errorf("failed to normalize forecast: %w", err))
	}

	log.Debug(msg.GetMessage("weather.forecast-ok", city, len(daily)),
		zap.String("request_id", requestid.FromContext(ctx)),
		zap.String("city", city),
		zap.Int("days", len(daily)))
	return daily, nil
}
