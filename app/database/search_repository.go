package database

import (
	"fmt"
)

// defaultRecentLimit bounds history reads when the caller passes no limit.
const defaultRecentLimit = 10

type searchRepository struct {
	db *DB
}

func NewSearchRepository(db *DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) Log(searchType, query string) error {
	_, err := r.db.Exec(`
		INSERT INTO search_history (search_type, search_query)
		VALUES ($1, $2)
	`, searchType, query)

	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}

	return nil
}

func (r *searchRepository) Recent(limit int) ([]SearchEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := r.db.Query(`
		SELECT search_type, search_query, created_at
		FROM search_history
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent searches: %w", err)
	}
	defer rows.Close()

	entries := make([]SearchEntry, 0, limit)
	for rows.Next() {
		var entry SearchEntry
		if err := rows.Scan(&entry.SearchType, &entry.SearchQuery, &entry.LoggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search entries: %w", err)
	}

	return entries, nil
}

func (r *searchRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM search_history").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get search count: %w", err)
	}
	return count, nil
}
