package weather

import (
	"math"
	"strings"

	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/model/external"
)

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// WindDirection maps a bearing in degrees to the nearest of the 8 compass points.
// Any finite bearing is accepted; the result is periodic in 360.
func WindDirection(deg float64) string {
	index := int(math.Mod(math.Floor((deg+22.5)/45), 8))
	if index < 0 {
		index += 8
	}
	return compassPoints[index]
}

// Normalize buckets the forecast list by calendar date. Entries without a
// "<date> <time>" timestamp are skipped; an entry with a timestamp but no
// weather, main or wind block fails the whole payload.
func Normalize(forecast *external.ForecastResponse) (entity.DailyForecast, error) {
	daily := entity.DailyForecast{}
	if forecast == nil || len(forecast.List) == 0 {
		return daily, nil
	}

	for i, entry := range forecast.List {
		date, clock, ok := splitTimestamp(entry.DtTxt)
		if !ok {
			continue
		}

		slot, err := toSlot(i, clock, entry)
		if err != nil {
			return nil, err
		}

		daily[date] = append(daily[date], slot)
	}

	return daily, nil
}

// splitTimestamp splits "2024-05-01 12:00:00" on the first run of whitespace.
func splitTimestamp(dtTxt string) (string, string, bool) {
	fields := strings.Fields(dtTxt)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], strings.Join(fields[1:], " "), true
}

func toSlot(index int, clock string, entry external.ForecastEntryDTO) (entity.ForecastSlot, error) {
	switch {
	case len(entry.Weather) == 0:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "weather"}
	case entry.Weather[0].Main == nil:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "weather.main"}
	case entry.Main == nil:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "main"}
	case entry.Main.Temp == nil:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "main.temp"}
	case entry.Main.FeelsLike == nil:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "main.feels_like"}
	case entry.Main.Humidity == nil:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "main.humidity"}
	case entry.Wind == nil:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "wind"}
	case entry.Wind.Speed == nil:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "wind.speed"}
	case entry.Wind.Deg == nil:
		return entity.ForecastSlot{}, &MalformedEntryError{Index: index, Field: "wind.deg"}
	}

	return entity.ForecastSlot{
		Time:      clock,
		Weather:   *entry.Weather[0].Main,
		Temp:      *entry.Main.Temp,
		FeelsLike: *entry.Main.FeelsLike,
		Humidity:  *entry.Main.Humidity,
		WindSpeed: *entry.Wind.Speed,
		WindDir:   WindDirection(*entry.Wind.Deg),
	}, nil
}
