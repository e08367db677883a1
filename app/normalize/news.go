package normalize

import (
	"log/slog"
	"time"

	"github.com/mfilonov/pulsedash/app/database"
	"github.com/mfilonov/pulsedash/app/upstream"
)

const (
	// removedTitle is the sentinel NewsAPI uses for redacted articles.
	removedTitle = "[Removed]"

	defaultDescription = "No description available"
	defaultAuthor      = "Unknown"

	publishedAtLayout = "2006-01-02T15:04:05Z"
)

// News maps a NewsAPI payload onto canonical articles, preserving upstream
// order. Articles without a usable title are skipped, as is any article whose
// publish time cannot be parsed; the rest of the batch is unaffected.
func News(payload *upstream.NewsPayload) []database.NewsArticle {
	articles := make([]database.NewsArticle, 0, len(payload.Articles))

	for _, raw := range payload.Articles {
		if raw.Title == "" || raw.Title == removedTitle {
			continue
		}

		publishedAt, err := time.Parse(publishedAtLayout, raw.PublishedAt)
		if err != nil {
			slog.Warn("Skipping article with unparseable publish time",
				"title", raw.Title, "publishedAt", raw.PublishedAt, "error", err)
			continue
		}

		articles = append(articles, database.NewsArticle{
			Title:       raw.Title,
			Description: stringOr(raw.Description, defaultDescription),
			URL:         raw.URL,
			ImageURL:    stringOr(raw.URLToImage, ""),
			SourceName:  raw.Source.Name,
			PublishedAt: publishedAt,
			Author:      stringOr(raw.Author, defaultAuthor),
		})
	}

	return articles
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
