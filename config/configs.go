// Package config loads application configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// MySQLDSN is the connection string for the orders database.
	MySQLDSN string

	// ServerPort is the port the analytics API listens on.
	ServerPort string

	// SimInterval is the delay between two simulator firings.
	SimInterval time.Duration

	// SimSeed seeds the simulator's random source. Zero means time-seeded.
	SimSeed int64
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("MYSQL_USER", "root"),
		getEnv("MYSQL_PASSWORD", ""),
		getEnv("MYSQL_HOST", "127.0.0.1"),
		getEnv("MYSQL_PORT", "3306"),
		getEnv("MYSQL_DB", "retail_info"),
	)

	return &Config{
		MySQLDSN:    dsn,
		ServerPort:  getEnv("SERVER_PORT", "3006"),
		SimInterval: time.Duration(getEnvInt("SIM_INTERVAL_SECONDS", 5)) * time.Second,
		SimSeed:     int64(getEnvInt("SIM_SEED", 0)),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
