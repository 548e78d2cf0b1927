package cmd

import (
	"fmt"
	"os"
	"strconv"

	"kitchenpos/internal/pkg/errs"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	Storage      string
	RabbitMQURL  string
	AppEnv       string
	RateLimit    float64
	RateBurst    int
	BoardJobSpec string
}

// LoadConfig reads the process environment. Call godotenv.Load first to pick
// up a .env file.
func LoadConfig() (Config, error) {
	return ConfigFromLookup(os.LookupEnv)
}

// ConfigFromLookup builds a Config from lookup, applying defaults for unset keys.
func ConfigFromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	config := Config{
		HTTPPort:     get("HTTP_PORT", "8080"),
		DBHost:       get("DB_HOST", "localhost"),
		DBPort:       get("DB_PORT", "5432"),
		DBUser:       get("DB_USER", "postgres"),
		DBPassword:   get("DB_PASSWORD", ""),
		DBName:       get("DB_NAME", "kitchenpos"),
		DBSslMode:    get("DB_SSLMODE", "disable"),
		Storage:      get("STORAGE", StoragePostgres),
		RabbitMQURL:  get("RABBITMQ_URL", ""),
		AppEnv:       get("APP_ENV", "development"),
		BoardJobSpec: get("BOARD_JOB_SPEC", ""),
	}

	rateLimit, err := strconv.ParseFloat(get("RATE_LIMIT", "0"), 64)
	if err != nil || rateLimit < 0 {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("RATE_LIMIT", err)
	}
	config.RateLimit = rateLimit

	burst, err := strconv.Atoi(get("RATE_BURST", "20"))
	if err != nil || burst < 1 {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("RATE_BURST", err)
	}
	config.RateBurst = burst

	if config.Storage != StoragePostgres && config.Storage != StorageMemory {
		return Config{}, errs.NewValueIsInvalidErrorWithCause(
			"STORAGE",
			fmt.Errorf("%q is neither %s nor %s", config.Storage, StoragePostgres, StorageMemory),
		)
	}

	return config, nil
}

// PostgresDSN renders the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
