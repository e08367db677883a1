package database

type WeatherRepository interface {
	Insert(reading WeatherReading) error
}

type ArticleRepository interface {
	InsertBatch(articles []NewsArticle) error
}

type SearchRepository interface {
	Log(searchType, query string) error
	Recent(limit int) ([]SearchEntry, error)
	Count() (int, error)
}
