package entity

// ForecastSlot is the simplified weather record for one 3 hour slot of a day.
type ForecastSlot struct {
	Time      string  `json:"time"`
	Weather   string  `json:"weather"`
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	WindSpeed float64 `json:"wind_s"`
	WindDir   string  `json:"wind_d"`
}

// DailyForecast maps a calendar date (YYYY-MM-DD) to its slots in upstream order.
type DailyForecast map[string][]ForecastSlot
