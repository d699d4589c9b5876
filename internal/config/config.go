package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	KafkaBrokers    []string
	KafkaAuditTopic string
}

// Load reads configuration from the environment, sourcing a .env file if one
// is present next to the binary or in a parent directory. Falls back to
// .example.env so a fresh checkout still starts.
func Load() Config {
	loadEnv()

	return Config{
		HTTPPort:        getEnv("HTTP_PORT", "5000"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("POSTGRES_USER", "postgres"),
		DBPassword:      getEnv("POSTGRES_PASSWORD", "postgres"),
		DBName:          getEnv("POSTGRES_DB", "parcelverge"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", ""),
		KafkaBrokers:    splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaAuditTopic: getEnv("KAFKA_AUDIT_TOPIC", "parcel_audit"),
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("config: cannot determine working directory: %v", err)
		return
	}

	candidates := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, path := range candidates {
		if err := godotenv.Load(path); err == nil {
			log.Printf("config: loaded environment from %s", path)
			return
		}
	}

	for _, path := range candidates {
		example := filepath.Join(filepath.Dir(path), ".example.env")
		if err := godotenv.Load(example); err == nil {
			log.Printf("config: loaded environment from %s", example)
			return
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
