package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config carries process-level settings read from the environment. An optional
// .env file is loaded first so local development needs no exported variables.
type Config struct {
	Port        string
	DatabaseURL string
	Storage     string // "postgres" (default) or "memory"
	SeedData    bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := &Config{
		Port:        getenv("PORT", "5000"),
		DatabaseURL: getenv("DATABASE_URL", ""),
		Storage:     getenv("STORAGE", "postgres"),
		SeedData:    os.Getenv("SEED_DATA") == "true",
	}

	if cfg.DatabaseURL == "" && cfg.Storage == "postgres" {
		host := getenv("PGHOST", "localhost")
		port := getenv("PGPORT", "5432")
		user := getenv("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := getenv("PGDATABASE", "schoolpulse")

		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password != "" {
			cfg.DatabaseURL += " password=" + password
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB connects to Postgres and verifies the connection.
func OpenDB(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Database connected successfully")
	return db, nil
}
