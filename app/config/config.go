package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB      *sql.DB
	SMTP    SMTPConfig
	Weather WeatherConfig
	BaseURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type WeatherConfig struct {
	APIKey      string
	DefaultCity string
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads .env, opens the PostgreSQL pool and builds AppConfig.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "gag")
	sslmode := getenv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s connect_timeout=10",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Printf("Testing database connection to %s:%s/%s...", host, port, dbname)
	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection: %v", err)
	}

	smtpPort, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	AppConfig = &Config{
		DB: db,
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "no-reply@gag.local"),
		},
		Weather: WeatherConfig{
			APIKey:      os.Getenv("OPENWEATHER_API_KEY"),
			DefaultCity: getenv("WEATHER_DEFAULT_CITY", "Ibagué,CO"),
		},
		BaseURL: getenv("BASE_URL", "http://localhost:3000"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
