package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	DefaultClimate string

	// Optional overrides for the built-in plant timeline registry.
	TimelineCSV  string
	TimelineXLSX string

	// External weather collaborator; empty endpoint means no weather.
	WeatherEndpoint string
	WeatherLat      float64
	WeatherLon      float64

	// Plant-guide ingestion.
	GuideAllowedDomains string
	GuideMaxBytes       int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if v, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:                get("PORT", "8080"),
		Timezone:            get("TZ", "Australia/Sydney"),
		DBPath:              get("DB_PATH", "sprout.db"),
		DefaultClimate:      get("DEFAULT_CLIMATE", "temperate"),
		TimelineCSV:         get("TIMELINE_CSV", ""),
		TimelineXLSX:        get("TIMELINE_XLSX", ""),
		WeatherEndpoint:     get("WEATHER_ENDPOINT", ""),
		WeatherLat:          getFloat("WEATHER_LAT", -33.87),
		WeatherLon:          getFloat("WEATHER_LON", 151.21),
		GuideAllowedDomains: get("GUIDE_ALLOWED_DOMAINS", ""),
		GuideMaxBytes:       getInt("GUIDE_MAX_BYTES_PER_PAGE", 1500000),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
