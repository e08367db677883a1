package cfg

type Cfg struct {
	// Upstream provider credentials
	WeatherAPIKey string
	NewsAPIKey    string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Application configuration
	Port  string
	Debug bool

	// Application metadata
	Version string
}
