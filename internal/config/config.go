package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	ReviewService  ReviewServiceConfig
	Redis          RedisConfig
	MinIO          MinIOConfig
	Recommendation RecommendationConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type ReviewServiceConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

type RedisConfig struct {
	Enabled      bool
	Addr         string
	Password     string
	DB           int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	GenreTTL     time.Duration
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	CatalogObject   string
}

// RecommendationConfig holds the ranking knobs. DefaultLimit is only reported
// back in the response meta; Cutoff is what actually bounds the result.
type RecommendationConfig struct {
	MinRating     float64
	Cutoff        int
	DefaultLimit  int
	DefaultOffset int
	YearWindow    int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "3000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "films_db"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		ReviewService: ReviewServiceConfig{
			BaseURL:     os.Getenv("REVIEW_API_URL"),
			HTTPTimeout: getDurationOrDefault("REVIEW_API_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			Enabled:      getBoolOrDefault("REDIS_ENABLED", false),
			Addr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           getIntOrDefault("REDIS_DB", 0),
			ReadTimeout:  getDurationOrDefault("REDIS_READ_TIMEOUT", 200*time.Millisecond),
			WriteTimeout: getDurationOrDefault("REDIS_WRITE_TIMEOUT", 200*time.Millisecond),
			GenreTTL:     getDurationOrDefault("REDIS_GENRE_TTL", 15*time.Minute),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "catalog"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", false),
			CatalogObject:   getEnvOrDefault("CATALOG_OBJECT", "catalog.json"),
		},
		Recommendation: RecommendationConfig{
			MinRating:     getFloatOrDefault("RECOMMENDATION_MIN_RATING", 4.0),
			Cutoff:        getIntOrDefault("RECOMMENDATION_CUTOFF", 3),
			DefaultLimit:  getIntOrDefault("RECOMMENDATION_DEFAULT_LIMIT", 10),
			DefaultOffset: getIntOrDefault("RECOMMENDATION_DEFAULT_OFFSET", 0),
			YearWindow:    getIntOrDefault("RECOMMENDATION_YEAR_WINDOW", 15),
		},
	}
}

// GetDSN returns PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) Validate() error {
	if c.ReviewService.BaseURL == "" {
		return fmt.Errorf("REVIEW_API_URL is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Recommendation.Cutoff < 0 {
		return fmt.Errorf("RECOMMENDATION_CUTOFF must not be negative")
	}
	if c.Recommendation.DefaultOffset < 0 {
		return fmt.Errorf("RECOMMENDATION_DEFAULT_OFFSET must not be negative")
	}
	if c.Recommendation.YearWindow < 0 {
		return fmt.Errorf("RECOMMENDATION_YEAR_WINDOW must not be negative")
	}
	if c.MinIO.AccessKeyID == "" || c.MinIO.SecretAccessKey == "" {
		return fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are required for catalog import")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
