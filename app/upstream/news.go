package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// newsPageSize is the fixed page size requested from the headlines endpoint.
const newsPageSize = 10

// NewsPayload mirrors the NewsAPI top-headlines response shape. Optional
// article fields are pointers so a missing key is distinguishable from an
// empty value.
type NewsPayload struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []RawArticle `json:"articles"`
}

type RawArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      *string `json:"author"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
}

// FetchNews requests top headlines for a category and country.
func (c *Client) FetchNews(ctx context.Context, category, country string) (*NewsPayload, error) {
	values := url.Values{}
	values.Set("apiKey", c.newsAPIKey)
	values.Set("category", category)
	values.Set("country", country)
	values.Set("pageSize", strconv.Itoa(newsPageSize))

	body, err := c.get(ctx, c.NewsBaseURL+"?"+values.Encode())
	if err != nil {
		return nil, err
	}

	var payload NewsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("%w: unexpected response status %q", ErrMalformed, payload.Status)
	}

	return &payload, nil
}
