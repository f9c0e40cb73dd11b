package api

import (
	"context"
	"errors"
	nethttp "net/http"

	"forecast-api/internal/domain/model"
	"forecast-api/internal/domain/model/external"
	"forecast-api/pkg/http"
	"forecast-api/pkg/requestid"
)

const apiKeyParam = "appid"

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseURL string, apiKey string, units string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
		baseURL:    baseURL,
		apiKey:     apiKey,
		units:      units,
	}
}

// APIKeyParam is the query parameter carrying the upstream credential.
func APIKeyParam() string {
	return apiKeyParam
}

// GetForecast calls GET /forecast?q=<city>&units=<units>&appid=<key>
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error) {
	queryParams := map[string]string{
		"q":         city,
		apiKeyParam: w.apiKey,
	}
	if w.units != "" {
		queryParams["units"] = w.units
	}

	var headers map[string]string
	if requestID := requestid.FromContext(ctx); requestID != "" {
		headers = map[string]string{requestid.Header: requestID}
	}

	successResp, errResp, statusCode, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(queryParams).
		WithHeaders(headers).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	var statusErr *http.StatusError
	switch {
	case errors.As(err, &statusErr):
		upstreamErr := &UpstreamStatusError{StatusCode: statusErr.StatusCode}
		if errorResponse, ok := errResp.(*external.APIErrorResponse); ok && errorResponse != nil {
			upstreamErr.Message = errorResponse.Message
		}
		return nil, upstreamErr
	case statusCode != 0 && statusCode != nethttp.StatusOK:
		// only a plain 200 carries a forecast
		return nil, &UpstreamStatusError{StatusCode: statusCode}
	case err != nil:
		return nil, err
	}

	return successResp.(*external.ForecastResponse), nil
}

func (w *weatherGatewayImpl) Health() model.ComponentHealthStatus {
	details := map[string]string{
		"baseUrl":          w.baseURL,
		"units":            w.units,
		"apiKeyConfigured": "false",
	}
	if w.apiKey != "" {
		details["apiKeyConfigured"] = "true"
	}

	if w.baseURL == "" || w.apiKey == "" {
		details["message"] = "upstream base url or api key not configured"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
