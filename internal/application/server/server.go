package server

import (
	"net"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/net/netutil"

	"forecast-api/configs"
	"forecast-api/docs"
	"forecast-api/internal/application/controller"
	"forecast-api/internal/application/middleware"
	"forecast-api/internal/domain/gateway/api"
	"forecast-api/internal/domain/usecase/health"
	"forecast-api/internal/domain/usecase/weather"
	"forecast-api/internal/infra/httplog"
	"forecast-api/pkg/http"
)

// New wires gateways, use cases and controllers into an echo instance.
func New(cfg *configs.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupRecover(e)
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	middleware.SetupCors(e, cfg.Cors.AllowedOrigins)

	routes := e.Group(cfg.ContextPath)

	// Init Gateway
	weatherGateway := newWeatherGateway(cfg.Weather)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(weatherGateway)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)

	// Init Controller
	controller.NewHealthController(routes, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(routes, weatherUseCase).InitWeatherRoutes()

	docs.SwaggerInfo.BasePath = cfg.ContextPath + "/"
	routes.GET("/swagger/*", echoSwagger.WrapHandler)

	controller.NewFrontendController(e, cfg.FrontendDir).InitFrontendRoutes()

	return e
}

// Listen opens the TCP listener for address. A positive maxConnections caps the
// number of connections served at once; further clients wait in the accept queue.
func Listen(address string, maxConnections int) (net.Listener, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}
	if maxConnections > 0 {
		listener = netutil.LimitListener(listener, maxConnections)
	}
	return listener, nil
}

func newWeatherGateway(cfg configs.WeatherConfig) api.WeatherGateway {
	return api.NewWeatherGateway(cfg.BaseURL, cfg.APIKey, cfg.Units, http.ClientOptions{
		FollowRedirect:    true,
		DefaultHeaders:    map[string]string{"Accept": "application/json"},
		ConnectionTimeout: cfg.ConnectionTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		Logger:            httplog.NewZapLogger("openweathermap", api.APIKeyParam()),
	})
}
