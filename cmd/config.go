package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Notifier selects the push transport: "redis" or "log".
	Notifier              string
	NotificationStream    string
	NotificationStreamLen int64

	TimeZone string

	NotificationRetrySchedule string
	NotificationMaxAttempts   int
	NotificationBatchSize     int
}

const (
	NotifierRedis = "redis"
	NotifierLog   = "log"
)

// LoadConfig reads the environment, after merging an optional .env file.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	redisDB, err := intVariable("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	maxAttempts, err := intVariable("NOTIFICATION_MAX_ATTEMPTS", 5)
	if err != nil {
		return Config{}, err
	}
	batchSize, err := intVariable("NOTIFICATION_BATCH_SIZE", 100)
	if err != nil {
		return Config{}, err
	}
	streamLen, err := intVariable("NOTIFICATION_STREAM_MAXLEN", 10000)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:                  variable("HTTP_PORT", "8080"),
		DBHost:                    variable("DB_HOST", "localhost"),
		DBPort:                    variable("DB_PORT", "5432"),
		DBUser:                    variable("DB_USER", "postgres"),
		DBPassword:                variable("DB_PASSWORD", ""),
		DBName:                    variable("DB_NAME", "staffing"),
		DBSslMode:                 variable("DB_SSLMODE", "disable"),
		RedisAddr:                 variable("REDIS_ADDR", "localhost:6379"),
		RedisPassword:             variable("REDIS_PASSWORD", ""),
		RedisDB:                   redisDB,
		Notifier:                  variable("NOTIFIER", NotifierRedis),
		NotificationStream:        variable("NOTIFICATION_STREAM", "staffing:push"),
		NotificationStreamLen:     int64(streamLen),
		TimeZone:                  variable("TIME_ZONE", "Asia/Tokyo"),
		NotificationRetrySchedule: variable("NOTIFICATION_RETRY_SCHEDULE", "0 * * * * *"),
		NotificationMaxAttempts:   maxAttempts,
		NotificationBatchSize:     batchSize,
	}
	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the values that cannot be defaulted away.
func (c Config) Validate() error {
	var problems []error
	if c.Notifier != NotifierRedis && c.Notifier != NotifierLog {
		problems = append(problems, fmt.Errorf("NOTIFIER must be %q or %q, got %q", NotifierRedis, NotifierLog, c.Notifier))
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		problems = append(problems, fmt.Errorf("TIME_ZONE: %w", err))
	}
	if c.NotificationMaxAttempts < 1 {
		problems = append(problems, errors.New("NOTIFICATION_MAX_ATTEMPTS must be at least 1"))
	}
	if c.NotificationBatchSize < 1 {
		problems = append(problems, errors.New("NOTIFICATION_BATCH_SIZE must be at least 1"))
	}
	return errors.Join(problems...)
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location resolves TimeZone. Validate has already rejected unknown zones.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func variable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
