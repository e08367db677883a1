package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// WeatherPayload mirrors the OpenWeatherMap current weather response shape.
type WeatherPayload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// FetchWeather requests current weather for a city in metric units.
func (c *Client) FetchWeather(ctx context.Context, city string) (*WeatherPayload, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", c.weatherAPIKey)
	values.Set("units", "metric")

	body, err := c.get(ctx, c.WeatherBaseURL+"?"+values.Encode())
	if err != nil {
		return nil, err
	}

	var payload WeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// A 200 response without these fields breaks the provider contract.
	if payload.Name == "" {
		return nil, fmt.Errorf("%w: missing city name", ErrMalformed)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: missing weather conditions", ErrMalformed)
	}

	return &payload, nil
}
