// config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"posyandu/internal/models"
)

type Config struct {
	DBURL          string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	APIURL         string
	ServerPort     int
	PageLimit      int
	LogLevel       string
	MigrationsPath string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	serverPort, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		serverPort = 8080
	}

	pageLimit, err := strconv.Atoi(os.Getenv("PAGE_LIMIT"))
	if err != nil || pageLimit <= 0 {
		pageLimit = models.DefaultLimit
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "file://internal/migrations"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbHost := os.Getenv("DB_HOST")
		if dbHost == "" {
			dbHost = "localhost"
		}
		dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
		if err != nil {
			dbPort = 5432
		}
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", dbUser, dbPassword, dbHost, dbPort, dbName)
	}

	parsedDBURL, err := url.Parse(dbURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	dbPortParsed, _ := strconv.Atoi(parsedDBURL.Port())
	dbPassword, _ := parsedDBURL.User.Password()

	return &Config{
		DBURL:          dbURL,
		DBHost:         parsedDBURL.Hostname(),
		DBPort:         dbPortParsed,
		DBUser:         parsedDBURL.User.Username(),
		DBPassword:     dbPassword,
		DBName:         strings.TrimPrefix(parsedDBURL.Path, "/"),
		APIURL:         apiURL,
		ServerPort:     serverPort,
		PageLimit:      pageLimit,
		LogLevel:       logLevel,
		MigrationsPath: migrationsPath,
	}, nil
}
