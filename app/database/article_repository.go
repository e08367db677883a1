package database

import (
	"fmt"
	"log/slog"
)

type articleRepository struct {
	db *DB
}

func NewArticleRepository(db *DB) ArticleRepository {
	return &articleRepository{db: db}
}

// InsertBatch stores articles best-effort: a failed insert is logged and the
// loop continues with the remaining articles. The last failure is returned so
// the caller can record that the batch was incomplete.
func (r *articleRepository) InsertBatch(articles []NewsArticle) error {
	var lastErr error

	for _, article := range articles {
		_, err := r.db.Exec(`
			INSERT INTO news_data (
				title, description, url, image_url, source, author, published_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, article.Title, article.Description, article.URL, article.ImageURL,
			article.SourceName, article.Author, article.PublishedAt)

		if err != nil {
			slog.Error("Failed to store news article", "title", article.Title, "error", err)
			lastErr = err
		}
	}

	if lastErr != nil {
		return fmt.Errorf("failed to store one or more articles: %w", lastErr)
	}

	return nil
}
