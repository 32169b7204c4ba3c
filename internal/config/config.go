package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName string
	Port    string

	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBTimeZone  string
	LogSQL      bool

	JWTSecret   string
	JWTTTLHours int

	SeedOnStart bool
	SeedRandom  int64
}

// Load reads .env (if present) and the process environment
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	return FromEnv()
}

// FromEnv builds the Config from environment variables only
func FromEnv() Config {
	return Config{
		AppName: get("APP_NAME", "Catalog Pricing API v1.0"),
		Port:    get("PORT", "3000"),

		DatabaseURL: get("DATABASE_URL", ""),
		DBHost:      get("DB_HOST", "localhost"),
		DBUser:      get("DB_USER", "postgres"),
		DBPassword:  get("DB_PASSWORD", ""),
		DBName:      get("DB_NAME", "catalog"),
		DBPort:      get("DB_PORT", "5432"),
		DBTimeZone:  get("DB_TIMEZONE", "UTC"),
		LogSQL:      getBool("LOG_SQL", false),

		JWTSecret:   get("JWT_SECRET", ""),
		JWTTTLHours: getInt("JWT_TTL_HOURS", 24),

		SeedOnStart: getBool("SEED_ON_START", false),
		SeedRandom:  int64(getInt("SEED_RANDOM", 42)),
	}
}

// JWTTTL is the token lifetime as a duration
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
