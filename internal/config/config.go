package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port        string
	MongoDBURI  string
	Environment string
	LogLevel    string
	CORSOrigin  string
	StaticDir   string

	// Outbound email transport and business owner contact details.
	// Injected into the mailer at construction, never read ad hoc.
	EmailHost  string
	EmailPort  int
	EmailUser  string
	EmailPass  string
	OwnerEmail string
	OwnerPhone string
	OwnerName  string
}

func LoadConfig() (*Config, error) {
	emailPort, err := strconv.Atoi(getEnvWithDefault("EMAIL_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("EMAIL_PORT must be a number: %v", err)
	}

	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "5000"),
		MongoDBURI:  getEnvWithDefault("MONGODB_URI", "mongodb://localhost:27017/booking-app"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		CORSOrigin:  getEnvWithDefault("CORS_ORIGIN", "http://localhost:3000"),
		StaticDir:   getEnvWithDefault("STATIC_DIR", "client/build"),
		EmailHost:   getEnvWithDefault("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:   emailPort,
		EmailUser:   os.Getenv("EMAIL_USER"),
		EmailPass:   os.Getenv("EMAIL_PASS"),
		OwnerEmail:  getEnvWithDefault("OWNER_EMAIL", "owner@bookingapp.com"),
		OwnerPhone:  getEnvWithDefault("OWNER_PHONE", "6306876007"),
		OwnerName:   getEnvWithDefault("OWNER_NAME", "Aman"),
	}

	// Email credentials are deliberately not required: notification is
	// best-effort and the server must boot without a transport configured.
	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
