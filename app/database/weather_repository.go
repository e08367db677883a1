package database

import (
	"fmt"
)

type weatherRepository struct {
	db *DB
}

func NewWeatherRepository(db *DB) WeatherRepository {
	return &weatherRepository{db: db}
}

func (r *weatherRepository) Insert(reading WeatherReading) error {
	_, err := r.db.Exec(`
		INSERT INTO weather_data (
			city, country, temperature, feels_like, description,
			icon, humidity, wind_speed, pressure, observed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, reading.City, reading.Country, reading.Temperature, reading.FeelsLike,
		reading.Description, reading.Icon, reading.Humidity, reading.WindSpeed,
		reading.Pressure, reading.ObservedAt)

	if err != nil {
		return fmt.Errorf("failed to insert weather reading: %w", err)
	}

	return nil
}
