package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Catalog     CatalogConfig
	Recommender RecommenderConfig
	CORS        CORSConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

const (
	CatalogSourcePostgres = "postgres"
	CatalogSourceCSV      = "csv"
)

type CatalogConfig struct {
	Source  string
	CSVPath string
}

type RecommenderConfig struct {
	TopK               int
	Epsilon            float64
	CandidateWidth     int
	ExploreExtra       int
	RuntimeTolerance   int
	PreferenceCacheTTL time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	topK, err := getEnvInt("RECO_TOP_K", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid RECO_TOP_K: %w", err)
	}
	epsilon, err := getEnvFloat("RECO_EPSILON", 0.2)
	if err != nil {
		return nil, fmt.Errorf("invalid RECO_EPSILON: %w", err)
	}
	candidateWidth, err := getEnvInt("RECO_CANDIDATE_POOL", 100)
	if err != nil {
		return nil, fmt.Errorf("invalid RECO_CANDIDATE_POOL: %w", err)
	}
	exploreExtra, err := getEnvInt("RECO_EXPLORE_EXTRA", 200)
	if err != nil {
		return nil, fmt.Errorf("invalid RECO_EXPLORE_EXTRA: %w", err)
	}
	tolerance, err := getEnvInt("RECO_RUNTIME_TOLERANCE", 15)
	if err != nil {
		return nil, fmt.Errorf("invalid RECO_RUNTIME_TOLERANCE: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("PREFERENCE_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PREFERENCE_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Movie Recommender API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "movie_recommender"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:       getEnv("REDIS_ENABLED", "false") == "true",
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Catalog: CatalogConfig{
			Source:  strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourcePostgres)),
			CSVPath: getEnv("CATALOG_CSV_PATH", "data/movies.csv"),
		},
		Recommender: RecommenderConfig{
			TopK:               topK,
			Epsilon:            epsilon,
			CandidateWidth:     candidateWidth,
			ExploreExtra:       exploreExtra,
			RuntimeTolerance:   tolerance,
			PreferenceCacheTTL: cacheTTL,
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Catalog.Source != CatalogSourcePostgres && cfg.Catalog.Source != CatalogSourceCSV {
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if cfg.Recommender.Epsilon < 0 || cfg.Recommender.Epsilon > 1 {
		return nil, errors.New("epsilon must be within [0, 1]")
	}

	if cfg.Recommender.TopK <= 0 {
		return nil, errors.New("top k must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(val)
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(val, 64)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
