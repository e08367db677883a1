package normalize

import (
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mfilonov/pulsedash/app/database"
	"github.com/mfilonov/pulsedash/app/upstream"
)

var titleCaser = cases.Title(language.English)

// Weather maps an OpenWeatherMap payload onto the canonical reading shape.
// Temperatures and wind speed are rounded to one decimal and the free-form
// condition description is title-cased for display. ObservedAt is stamped
// with the fetch time, not anything from upstream.
func Weather(payload *upstream.WeatherPayload, observedAt time.Time) database.WeatherReading {
	reading := database.WeatherReading{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: round1(payload.Main.Temp),
		FeelsLike:   round1(payload.Main.FeelsLike),
		Humidity:    payload.Main.Humidity,
		WindSpeed:   round1(payload.Wind.Speed),
		Pressure:    payload.Main.Pressure,
		ObservedAt:  observedAt,
	}

	if len(payload.Weather) > 0 {
		reading.Description = titleCaser.String(payload.Weather[0].Description)
		reading.Icon = payload.Weather[0].Icon
	}

	return reading
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
