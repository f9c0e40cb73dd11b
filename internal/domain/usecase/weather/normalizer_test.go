package weather

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/model/external"
)

func decodeForecast(t *testing.T, payload string) *external.ForecastResponse {
	t.Helper()
	var forecast external.ForecastResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &forecast))
	return &forecast
}

func TestWindDirection(t *testing.T) {
	examples := map[string]struct {
		Deg      float64
		Expected string
	}{
		"north":                {Deg: 0, Expected: "N"},
		"north east":           {Deg: 45, Expected: "NE"},
		"east":                 {Deg: 90, Expected: "E"},
		"south east":           {Deg: 135, Expected: "SE"},
		"south":                {Deg: 180, Expected: "S"},
		"south west":           {Deg: 225, Expected: "SW"},
		"west":                 {Deg: 270, Expected: "W"},
		"north west":           {Deg: 315, Expected: "NW"},
		"just below NE border": {Deg: 22.4, Expected: "N"},
		"NE border":            {Deg: 22.5, Expected: "NE"},
		"wraps to north":       {Deg: 338, Expected: "N"},
		"last degree":          {Deg: 359, Expected: "N"},
		"full turn":            {Deg: 360, Expected: "N"},
		"negative bearing":     {Deg: -1, Expected: "N"},
		"negative west":        {Deg: -90, Expected: "W"},
	}

	for name, example := range examples {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, example.Expected, WindDirection(example.Deg))
		})
	}
}

func TestWindDirection_AlwaysCompassPointAndPeriodic(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 0.5 {
		label := WindDirection(deg)
		assert.Contains(t, compassPoints, label, "bearing %v", deg)
		assert.Equal(t, label, WindDirection(deg-360), "bearing %v", deg)
		assert.Equal(t, label, WindDirection(deg+360), "bearing %v", deg)
	}
}

func TestNormalize_EmptyInputs(t *testing.T) {
	examples := map[string]*external.ForecastResponse{
		"nil payload":  nil,
		"missing list": decodeForecast(t, `{"cod":"200"}`),
		"empty list":   decodeForecast(t, `{"cod":"200","list":[]}`),
	}

	for name, forecast := range examples {
		t.Run(name, func(t *testing.T) {
			daily, err := Normalize(forecast)
			require.NoError(t, err)
			assert.NotNil(t, daily)
			assert.Empty(t, daily)
		})
	}
}

func TestNormalize_BucketsByDateInInputOrder(t *testing.T) {
	forecast := decodeForecast(t, `{"list":[
		{"dt_txt":"2024-05-01 21:00:00","weather":[{"main":"Rain"},{"main":"Clouds"}],"main":{"temp":50.5,"feels_like":48.1,"humidity":90},"wind":{"speed":7.2,"deg":200}},
		{"dt_txt":"2024-05-01 18:00:00","weather":[{"main":"Clouds"}],"main":{"temp":55,"feels_like":53.2,"humidity":80},"wind":{"speed":5.1,"deg":10}},
		{"dt_txt":"2024-05-02 00:00:00","weather":[{"main":"Clear"}],"main":{"temp":45.3,"feels_like":41,"humidity":70},"wind":{"speed":3,"deg":93}}
	]}`)

	daily, err := Normalize(forecast)
	require.NoError(t, err)

	require.Len(t, daily, 2)
	assert.Equal(t, []entity.ForecastSlot{
		{Time: "21:00:00", Weather: "Rain", Temp: 50.5, FeelsLike: 48.1, Humidity: 90, WindSpeed: 7.2, WindDir: "S"},
		{Time: "18:00:00", Weather: "Clouds", Temp: 55, FeelsLike: 53.2, Humidity: 80, WindSpeed: 5.1, WindDir: "N"},
	}, daily["2024-05-01"])
	assert.Equal(t, []entity.ForecastSlot{
		{Time: "00:00:00", Weather: "Clear", Temp: 45.3, FeelsLike: 41, Humidity: 70, WindSpeed: 3, WindDir: "E"},
	}, daily["2024-05-02"])
}

func TestNormalize_SkipsEntriesWithoutTimestamp(t *testing.T) {
	forecast := decodeForecast(t, `{"list":[
		{"weather":[{"main":"Rain"}],"main":{"temp":1,"feels_like":1,"humidity":1},"wind":{"speed":1,"deg":1}},
		{"dt_txt":"","weather":[{"main":"Rain"}],"main":{"temp":1,"feels_like":1,"humidity":1},"wind":{"speed":1,"deg":1}},
		{"dt_txt":"2024-05-01"},
		{"dt_txt":"2024-05-01 09:00:00","weather":[{"main":"Snow"}],"main":{"temp":30,"feels_like":25,"humidity":60},"wind":{"speed":2,"deg":270}}
	]}`)

	daily, err := Normalize(forecast)
	require.NoError(t, err)

	require.Len(t, daily, 1)
	require.Len(t, daily["2024-05-01"], 1)
	assert.Equal(t, "09:00:00", daily["2024-05-01"][0].Time)
	assert.Equal(t, "W", daily["2024-05-01"][0].WindDir)
}

func TestNormalize_FailsOnMalformedBody(t *testing.T) {
	examples := map[string]struct {
		Entry string
		Field string
	}{
		"no weather":      {Entry: `{"dt_txt":"2024-05-01 09:00:00","main":{"temp":1,"feels_like":1,"humidity":1},"wind":{"speed":1,"deg":1}}`, Field: "weather"},
		"empty weather":   {Entry: `{"dt_txt":"2024-05-01 09:00:00","weather":[],"main":{"temp":1,"feels_like":1,"humidity":1},"wind":{"speed":1,"deg":1}}`, Field: "weather"},
		"no category":     {Entry: `{"dt_txt":"2024-05-01 09:00:00","weather":[{}],"main":{"temp":1,"feels_like":1,"humidity":1},"wind":{"speed":1,"deg":1}}`, Field: "weather.main"},
		"no main":         {Entry: `{"dt_txt":"2024-05-01 09:00:00","weather":[{"main":"Rain"}],"wind":{"speed":1,"deg":1}}`, Field: "main"},
		"no temp":         {Entry: `{"dt_txt":"2024-05-01 09:00:00","weather":[{"main":"Rain"}],"main":{"feels_like":1,"humidity":1},"wind":{"speed":1,"deg":1}}`, Field: "main.temp"},
		"no wind":         {Entry: `{"dt_txt":"2024-05-01 09:00:00","weather":[{"main":"Rain"}],"main":{"temp":1,"feels_like":1,"humidity":1}}`, Field: "wind"},
		"no wind bearing": {Entry: `{"dt_txt":"2024-05-01 09:00:00","weather":[{"main":"Rain"}],"main":{"temp":1,"feels_like":1,"humidity":1},"wind":{"speed":1}}`, Field: "wind.deg"},
	}

	for name, example := range examples {
		t.Run(name, func(t *testing.T) {
			daily, err := Normalize(decodeForecast(t, `{"list":[`+example.Entry+`]}`))
			assert.Nil(t, daily)

			var malformed *MalformedEntryError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, 0, malformed.Index)
			assert.Equal(t, example.Field, malformed.Field)
		})
	}
}
