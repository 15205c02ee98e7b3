package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	NavigationTriggerButton = "button"
	NavigationTriggerAlways = "always"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Внешние сервисы
	ReportsAPIURL     string        `env:"REPORTS_API_URL" envDefault:"http://127.0.0.1:5000"`
	ORSAPIURL         string        `env:"ORS_API_URL" envDefault:"https://api.openrouteservice.org"`
	ORSAPIKey         string        `env:"ORS_API_KEY"`
	ORSProfile        string        `env:"ORS_PROFILE" envDefault:"driving-car"`
	TomTomAPIKey      string        `env:"TOMTOM_API_KEY"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"0"`

	// Лента сообщений
	ReportsPollInterval time.Duration `env:"REPORTS_POLL_INTERVAL" envDefault:"5s"`
	Timezone            string        `env:"TIMEZONE" envDefault:"Local"`

	// Геолокация
	LocationWatchTimeout  time.Duration `env:"LOCATION_WATCH_TIMEOUT" envDefault:"30s"`
	LocationFixTimeout    time.Duration `env:"LOCATION_FIX_TIMEOUT" envDefault:"10s"`
	LocationZoomThreshold int           `env:"LOCATION_ZOOM_THRESHOLD" envDefault:"18"`
	LocationZoom          int           `env:"LOCATION_ZOOM" envDefault:"20"`

	// Карта
	MapMaxZoom        int    `env:"MAP_MAX_ZOOM" envDefault:"22"`
	ViewportWidth     int    `env:"VIEWPORT_WIDTH" envDefault:"1024"`
	ViewportHeight    int    `env:"VIEWPORT_HEIGHT" envDefault:"768"`
	NavigationTrigger string `env:"NAVIGATION_TRIGGER" envDefault:"button"`

	// Redis Config, пустой адрес - уведомления хранятся в памяти
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPass      string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	NoticeCapacity int    `env:"NOTICE_CAPACITY" envDefault:"100"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		ReportsAPIURL:         getEnv("REPORTS_API_URL", "http://127.0.0.1:5000"),
		ORSAPIURL:             getEnv("ORS_API_URL", "https://api.openrouteservice.org"),
		ORSAPIKey:             os.Getenv("ORS_API_KEY"),
		ORSProfile:            getEnv("ORS_PROFILE", "driving-car"),
		TomTomAPIKey:          os.Getenv("TOMTOM_API_KEY"),
		HTTPClientTimeout:     getEnvAsDuration("HTTP_CLIENT_TIMEOUT", 0),
		ReportsPollInterval:   getEnvAsDuration("REPORTS_POLL_INTERVAL", 5*time.Second),
		Timezone:              getEnv("TIMEZONE", "Local"),
		LocationWatchTimeout:  getEnvAsDuration("LOCATION_WATCH_TIMEOUT", 30*time.Second),
		LocationFixTimeout:    getEnvAsDuration("LOCATION_FIX_TIMEOUT", 10*time.Second),
		LocationZoomThreshold: getEnvAsInt("LOCATION_ZOOM_THRESHOLD", 18),
		LocationZoom:          getEnvAsInt("LOCATION_ZOOM", 20),
		MapMaxZoom:            getEnvAsInt("MAP_MAX_ZOOM", 22),
		ViewportWidth:         getEnvAsInt("VIEWPORT_WIDTH", 1024),
		ViewportHeight:        getEnvAsInt("VIEWPORT_HEIGHT", 768),
		NavigationTrigger:     strings.ToLower(getEnv("NAVIGATION_TRIGGER", NavigationTriggerButton)),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		NoticeCapacity:        getEnvAsInt("NOTICE_CAPACITY", 100),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.ORSAPIKey == "" {
		return fmt.Errorf("ORS_API_KEY environment variable is required")
	}
	if c.NavigationTrigger != NavigationTriggerButton && c.NavigationTrigger != NavigationTriggerAlways {
		return fmt.Errorf("NAVIGATION_TRIGGER must be %q or %q, got %q",
			NavigationTriggerButton, NavigationTriggerAlways, c.NavigationTrigger)
	}
	if c.ReportsPollInterval <= 0 {
		return fmt.Errorf("REPORTS_POLL_INTERVAL must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location возвращает часовой пояс для отображения времени сообщений
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
