package external

// ForecastResponse represents the 5 day / 3 hour forecast payload of the OpenWeatherMap API.
// Blocks are pointers so a missing block can be told apart from a zero value.
type ForecastResponse struct {
	Cod     any                `json:"cod"`
	Message any                `json:"message"`
	Count   int                `json:"cnt"`
	List    []ForecastEntryDTO `json:"list"`
	City    *ForecastCityDTO   `json:"city,omitempty"`
}

// ForecastEntryDTO represents a single 3 hour slot
type ForecastEntryDTO struct {
	Dt      int64                 `json:"dt"`
	DtTxt   string                `json:"dt_txt"`
	Weather []WeatherConditionDTO `json:"weather"`
	Main    *ForecastMainDTO      `json:"main"`
	Wind    *ForecastWindDTO      `json:"wind"`
}

// WeatherConditionDTO represents one weather category of a slot
type WeatherConditionDTO struct {
	ID          int     `json:"id"`
	Main        *string `json:"main"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

type ForecastMainDTO struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *float64 `json:"humidity"`
	Pressure  float64  `json:"pressure"`
}

type ForecastWindDTO struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
	Gust  float64  `json:"gust"`
}

type ForecastCityDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// APIErrorResponse represents error responses from the OpenWeatherMap API
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
