// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Seed admin account, created on first boot when no admin exists
	AdminEmail    string
	AdminPassword string

	// Front-end page paths the form endpoints redirect back to
	BookingPage string
	ContactPage string
	ServicePage string

	// Email Configuration (lead notifications to showroom staff)
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	FromName   string
	StaffEmail string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/showroom?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@showroom.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		BookingPage: getEnv("BOOKING_PAGE", "/book-test-ride"),
		ContactPage: getEnv("CONTACT_PAGE", "/contact"),
		ServicePage: getEnv("SERVICE_PAGE", "/service"),

		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   smtpPort,
		SMTPUser:   getEnv("SMTP_USERNAME", ""),
		SMTPPass:   getEnv("SMTP_PASSWORD", ""),
		FromEmail:  getEnv("FROM_EMAIL", "noreply@showroom.local"),
		FromName:   getEnv("FROM_NAME", "Showroom"),
		StaffEmail: getEnv("STAFF_EMAIL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
