package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mfilonov/pulsedash/app/database"
	"github.com/mfilonov/pulsedash/app/normalize"
	"github.com/mfilonov/pulsedash/app/upstream"
)

const (
	defaultCity     = "London"
	defaultCategory = "general"
	defaultCountry  = "us"

	searchHistoryLimit = 15
)

func NewHandler(client UpstreamClient, weatherRepo database.WeatherRepository,
	articleRepo database.ArticleRepository, searchRepo database.SearchRepository) *Handler {
	return &Handler{
		client:      client,
		weatherRepo: weatherRepo,
		articleRepo: articleRepo,
		searchRepo:  searchRepo,
	}
}

func (h *Handler) GetWeather(c *gin.Context) {
	city := c.DefaultQuery("city", defaultCity)
	if city == "" {
		city = defaultCity
	}

	payload, err := h.client.FetchWeather(c.Request.Context(), city)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "City not found"})
			return
		}
		if errors.Is(err, upstream.ErrMalformed) {
			slog.Error("Weather provider returned malformed payload", "city", city, "error", err)
		} else {
			slog.Error("Weather fetch failed", "city", city, "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	reading := normalize.Weather(payload, time.Now())

	// Best-effort persistence: storage failures never change the response.
	if err := h.weatherRepo.Insert(reading); err != nil {
		slog.Error("Failed to store weather reading", "city", reading.City, "error", err)
	}
	if err := h.searchRepo.Log(database.SearchTypeWeather, city); err != nil {
		slog.Error("Failed to log search", "type", database.SearchTypeWeather, "query", city, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reading})
}

func (h *Handler) GetNews(c *gin.Context) {
	category := c.DefaultQuery("category", defaultCategory)
	if category == "" {
		category = defaultCategory
	}
	country := c.DefaultQuery("country", defaultCountry)
	if country == "" {
		country = defaultCountry
	}

	payload, err := h.client.FetchNews(c.Request.Context(), category, country)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Failed to fetch news"})
			return
		}
		if errors.Is(err, upstream.ErrMalformed) {
			slog.Error("News provider returned malformed payload",
				"category", category, "country", country, "error", err)
		} else {
			slog.Error("News fetch failed", "category", category, "country", country, "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	articles := normalize.News(payload)

	if len(articles) > 0 {
		if err := h.articleRepo.InsertBatch(articles); err != nil {
			slog.Error("Failed to store news articles",
				"category", category, "country", country, "error", err)
		}
	}

	// Query string uses the effective values actually sent upstream.
	query := category + " - " + country
	if err := h.searchRepo.Log(database.SearchTypeNews, query); err != nil {
		slog.Error("Failed to log search", "type", database.SearchTypeNews, "query", query, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": articles})
}

func (h *Handler) GetSearchHistory(c *gin.Context) {
	entries, err := h.searchRepo.Recent(searchHistoryLimit)
	if err != nil {
		slog.Error("Failed to read search history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if count, err := h.searchRepo.Count(); err == nil {
		health["searches"] = count
	}

	c.JSON(http.StatusOK, health)
}
