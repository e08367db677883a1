package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleWeatherBody = `{
	"name": "London",
	"sys": {"country": "GB"},
	"main": {"temp": 15.55, "feels_like": 14.2, "humidity": 70, "pressure": 1012},
	"weather": [{"description": "light rain", "icon": "10d"}],
	"wind": {"speed": 3.3}
}`

func TestFetchWeather_Success(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Write([]byte(sampleWeatherBody))
	}))
	defer server.Close()

	client := NewClient("weather-key", "news-key")
	client.WeatherBaseURL = server.URL

	payload, err := client.FetchWeather(context.Background(), "London")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if gotQuery["q"] != "London" {
		t.Errorf("Expected q=London, got %q", gotQuery["q"])
	}
	if gotQuery["appid"] != "weather-key" {
		t.Errorf("Expected appid=weather-key, got %q", gotQuery["appid"])
	}
	if gotQuery["units"] != "metric" {
		t.Errorf("Expected units=metric, got %q", gotQuery["units"])
	}

	if payload.Name != "London" {
		t.Errorf("Expected city London, got %q", payload.Name)
	}
	if payload.Sys.Country != "GB" {
		t.Errorf("Expected country GB, got %q", payload.Sys.Country)
	}
	if payload.Main.Temp != 15.55 {
		t.Errorf("Expected temp 15.55, got %v", payload.Main.Temp)
	}
	if len(payload.Weather) != 1 || payload.Weather[0].Icon != "10d" {
		t.Errorf("Unexpected weather conditions: %+v", payload.Weather)
	}
}

func TestFetchWeather_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	client := NewClient("weather-key", "news-key")
	client.WeatherBaseURL = server.URL

	_, err := client.FetchWeather(context.Background(), "Nowhere")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFetchWeather_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient("weather-key", "news-key")
	client.WeatherBaseURL = server.URL

	_, err := client.FetchWeather(context.Background(), "London")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for undecodable body, got %v", err)
	}
}

func TestFetchWeather_MissingRequiredFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "London", "weather": []}`))
	}))
	defer server.Close()

	client := NewClient("weather-key", "news-key")
	client.WeatherBaseURL = server.URL

	_, err := client.FetchWeather(context.Background(), "London")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for missing conditions, got %v", err)
	}
}

func TestFetchWeather_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient("weather-key", "news-key")
	client.WeatherBaseURL = server.URL

	_, err := client.FetchWeather(context.Background(), "London")
	if err == nil {
		t.Fatal("Expected transport error for unreachable server")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrMalformed) {
		t.Errorf("Transport error should not match the status sentinels, got %v", err)
	}
}
