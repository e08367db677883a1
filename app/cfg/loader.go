package cfg

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Upstream provider credentials
	WeatherAPIKey string `long:"weather-api-key" env:"WEATHER_API_KEY" description:"OpenWeatherMap API key (required)" required:"true"`
	NewsAPIKey    string `long:"news-api-key" env:"NEWS_API_KEY" description:"NewsAPI key (required)" required:"true"`

	// Database configuration
	DBHost     string `long:"db-host" env:"DB_HOST" default:"localhost" description:"Database host"`
	DBPort     string `long:"db-port" env:"DB_PORT" default:"5432" description:"Database port"`
	DBUser     string `long:"db-user" env:"DB_USER" default:"dashboard_user" description:"Database user"`
	DBPassword string `long:"db-password" env:"DB_PASSWORD" description:"Database password (required)" required:"true"`
	DBName     string `long:"db-name" env:"DB_NAME" default:"dashboard" description:"Database name"`

	// Application configuration
	Port  string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	Debug bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load reads configuration from a .env file (when present), environment
// variables, and command-line flags. Returns (nil, nil) when help was shown.
func Load() (*Cfg, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		WeatherAPIKey: raw.WeatherAPIKey,
		NewsAPIKey:    raw.NewsAPIKey,
		DBHost:        raw.DBHost,
		DBPort:        raw.DBPort,
		DBUser:        raw.DBUser,
		DBPassword:    raw.DBPassword,
		DBName:        raw.DBName,
		Port:          raw.Port,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	return cfg, nil
}
