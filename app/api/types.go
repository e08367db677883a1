package api

import (
	"context"

	"github.com/mfilonov/pulsedash/app/database"
	"github.com/mfilonov/pulsedash/app/upstream"
)

// UpstreamClient is the slice of the upstream client the handlers need.
type UpstreamClient interface {
	FetchWeather(ctx context.Context, city string) (*upstream.WeatherPayload, error)
	FetchNews(ctx context.Context, category, country string) (*upstream.NewsPayload, error)
}

var _ UpstreamClient = (*upstream.Client)(nil)

type Handler struct {
	client      UpstreamClient
	weatherRepo database.WeatherRepository
	articleRepo database.ArticleRepository
	searchRepo  database.SearchRepository
}
