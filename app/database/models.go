package database

import (
	"time"
)

// Search types accepted by the search history log.
const (
	SearchTypeWeather = "weather"
	SearchTypeNews    = "news"
)

// WeatherReading is the canonical weather record, independent of the
// provider's JSON shape. JSON tags match the dashboard wire format.
type WeatherReading struct {
	City        string    `json:"city"`
	Country     string    `json:"country,omitempty"` // present only when upstream supplies it
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Pressure    int       `json:"pressure"`
	ObservedAt  time.Time `json:"timestamp"`
}

// NewsArticle is the canonical article record. The urlToImage/publishedAt
// casing comes from the dashboard wire format.
type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"urlToImage"`
	SourceName  string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      string    `json:"author"`
}

// SearchEntry is one logged search. LoggedAt is store-assigned on insert.
type SearchEntry struct {
	SearchType  string    `json:"search_type"`
	SearchQuery string    `json:"search_query"`
	LoggedAt    time.Time `json:"timestamp"`
}
