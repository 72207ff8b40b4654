package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend selezionabili per lo store dei documenti.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config contiene le impostazioni runtime per match-svc.
type Config struct {
	GRPCAddr     string
	HTTPAddr     string
	StoreBackend string

	DBDSN       string
	DBSecretARN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTIssuer string

	SweepInterval time.Duration
	TxMaxAttempts int
	TxBackoff     time.Duration
}

// Load legge le variabili d'ambiente con default minimi.
func Load() Config {
	dbDSN := os.Getenv("DB_DSN")
	if dbDSN == "" {
		dbDSN = buildDSN(os.Getenv("DB_HOST"), getEnv("DB_PORT", "5432"), os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
	}

	return Config{
		GRPCAddr:      getEnv("GRPC_ADDR", ":50061"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8081"),
		StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", BackendPostgres)),
		DBDSN:         dbDSN,
		DBSecretARN:   os.Getenv("DB_SECRET_ARN"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     os.Getenv("JWT_ISSUER"),
		SweepInterval: getDuration("SWEEP_INTERVAL", time.Minute),
		TxMaxAttempts: getInt("TX_MAX_ATTEMPTS", 5),
		TxBackoff:     getDuration("TX_BACKOFF", 20*time.Millisecond),
	}
}

// getEnv ritorna il fallback quando la variabile non è presente.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("valore env non valido, uso default", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		slog.Warn("durata env non valida, uso default", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func buildDSN(host, port, user, password, name string) string {
	sslmode := getEnv("DB_SSLMODE", "require")
	if host == "" || user == "" || name == "" {
		return ""
	}
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(user), url.QueryEscape(password), host, port, name, sslmode)
}
