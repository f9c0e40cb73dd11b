package health

import (
	"forecast-api/internal/domain/gateway/api"
	"forecast-api/internal/domain/model"
)

type healthUseCase struct {
	weatherGateway api.WeatherGateway
}

func NewHealthUseCase(weatherGateway api.WeatherGateway) UseCase {
	return &healthUseCase{
		weatherGateway: weatherGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	upstreamHealth := useCase.weatherGateway.Health()

	overallStatus := model.StatusUp
	if upstreamHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Upstream: upstreamHealth,
	}
}
