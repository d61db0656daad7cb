package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	Store    string
	LogLevel slog.Level

	SessionTTL           time.Duration
	SessionSweepSchedule string

	SeedFile          string
	PhotoDir          string
	BackOfficeCommand string
	BackOfficeToken   string

	RabbitMQURL      string
	RabbitMQExchange string

	RestaurantPhone   string
	RestaurantWebsite string
	MenuURL           string
}

// LoadConfig reads envFiles into the environment (missing files are skipped,
// variables already set win) and resolves every setting with its default.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "orderbot")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "orderbot")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("STORE", StorePostgres)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("SESSION_SWEEP_SCHEDULE", "0 * * * * *")
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("PHOTO_DIR", "photos")
	v.SetDefault("BACKOFFICE_COMMAND", "")
	v.SetDefault("BACKOFFICE_TOKEN", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "orders_topic")
	v.SetDefault("RESTAURANT_PHONE", "04-953-3333")
	v.SetDefault("RESTAURANT_WEBSITE", "https://thaichin.co.il/")
	v.SetDefault("MENU_URL", "https://thaichin.co.il/menu/#mr-tab-0")

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	ttl, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
	}

	store := strings.ToLower(v.GetString("STORE"))
	if store != StorePostgres && store != StoreMemory {
		return Config{}, fmt.Errorf("STORE must be %s or %s, got %q", StorePostgres, StoreMemory, store)
	}

	command := strings.TrimSpace(v.GetString("BACKOFFICE_COMMAND"))
	if command != "" && !strings.HasPrefix(command, "/") {
		return Config{}, fmt.Errorf("BACKOFFICE_COMMAND must start with /, got %q", command)
	}

	return Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		Store:                store,
		LogLevel:             level,
		SessionTTL:           ttl,
		SessionSweepSchedule: v.GetString("SESSION_SWEEP_SCHEDULE"),
		SeedFile:             v.GetString("SEED_FILE"),
		PhotoDir:             v.GetString("PHOTO_DIR"),
		BackOfficeCommand:    command,
		BackOfficeToken:      v.GetString("BACKOFFICE_TOKEN"),
		RabbitMQURL:          v.GetString("RABBITMQ_URL"),
		RabbitMQExchange:     v.GetString("RABBITMQ_EXCHANGE"),
		RestaurantPhone:      v.GetString("RESTAURANT_PHONE"),
		RestaurantWebsite:    v.GetString("RESTAURANT_WEBSITE"),
		MenuURL:              v.GetString("MENU_URL"),
	}, nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
