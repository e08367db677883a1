package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleNewsBody = `{
	"status": "ok",
	"totalResults": 2,
	"articles": [
		{
			"source": {"name": "BBC Sport"},
			"author": "Jo Bloggs",
			"title": "Match report",
			"description": "A close game.",
			"url": "https://example.com/match",
			"urlToImage": "https://example.com/match.jpg",
			"publishedAt": "2024-05-01T10:00:00Z"
		},
		{
			"source": {"name": "Sky Sports"},
			"author": null,
			"title": "Transfer news",
			"description": null,
			"url": "https://example.com/transfer",
			"urlToImage": null,
			"publishedAt": "2024-05-01T09:00:00Z"
		}
	]
}`

func TestFetchNews_Success(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"apiKey":   r.URL.Query().Get("apiKey"),
			"category": r.URL.Query().Get("category"),
			"country":  r.URL.Query().Get("country"),
			"pageSize": r.URL.Query().Get("pageSize"),
		}
		w.Write([]byte(sampleNewsBody))
	}))
	defer server.Close()

	client := NewClient("weather-key", "news-key")
	client.NewsBaseURL = server.URL

	payload, err := client.FetchNews(context.Background(), "sports", "gb")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if gotQuery["apiKey"] != "news-key" {
		t.Errorf("Expected apiKey=news-key, got %q", gotQuery["apiKey"])
	}
	if gotQuery["category"] != "sports" {
		t.Errorf("Expected category=sports, got %q", gotQuery["category"])
	}
	if gotQuery["country"] != "gb" {
		t.Errorf("Expected country=gb, got %q", gotQuery["country"])
	}
	if gotQuery["pageSize"] != "10" {
		t.Errorf("Expected pageSize=10, got %q", gotQuery["pageSize"])
	}

	if len(payload.Articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(payload.Articles))
	}

	first := payload.Articles[0]
	if first.Title != "Match report" {
		t.Errorf("Expected title 'Match report', got %q", first.Title)
	}
	if first.Author == nil || *first.Author != "Jo Bloggs" {
		t.Errorf("Expected author 'Jo Bloggs', got %v", first.Author)
	}

	second := payload.Articles[1]
	if second.Author != nil {
		t.Errorf("Expected nil author for null JSON value, got %v", *second.Author)
	}
	if second.Description != nil {
		t.Errorf("Expected nil description for null JSON value, got %v", *second.Description)
	}
}

func TestFetchNews_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("weather-key", "news-key")
	client.NewsBaseURL = server.URL

	_, err := client.FetchNews(context.Background(), "general", "us")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for non-200 status, got %v", err)
	}
}

func TestFetchNews_ErrorResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid"}`))
	}))
	defer server.Close()

	client := NewClient("weather-key", "news-key")
	client.NewsBaseURL = server.URL

	_, err := client.FetchNews(context.Background(), "general", "us")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for status=error body, got %v", err)
	}
}
