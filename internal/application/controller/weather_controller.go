package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"forecast-api/internal/domain/model"
	"forecast-api/internal/domain/usecase/weather"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetForecast)
}

// GetForecast godoc
// @Summary Get the forecast of a city grouped by day
// @Description Fetch the 5 day / 3 hour forecast from the upstream weather API and group the slots by calendar date
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} entity.DailyForecast "Slots keyed by date (YYYY-MM-DD)"
// @Failure 400 {object} model.ErrorResponse "City parameter is required"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /weather [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	city := c.QueryParam("city")

	forecast, err := controller.useCase.GetForecast(c.Request().Context(), city)
	if err != nil {
		return c.JSON(statusFor(weather.KindOf(err)), model.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, forecast)
}

func statusFor(kind weather.Kind) int {
	switch kind {
	case weather.KindInvalidRequest:
		return http.StatusBadRequest
	case weather.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
