package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"hotelops/internal/domain"
)

const (
	defaultAddr      = ":8080"
	defaultDSN       = "hotelops.db"
	defaultJWTTTL    = "24h"
	defaultJWTSecret = "change-me-jwt-secret"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	OperatorName         string
	OperatorPasswordHash string

	Business domain.BusinessProfile
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("HTTP_ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDSN)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.OperatorName = getEnv("OPERATOR_NAME", "reception")
	cfg.OperatorPasswordHash = strings.TrimSpace(os.Getenv("OPERATOR_PASSWORD_HASH"))

	cfg.Business = domain.BusinessProfile{
		Name:               getEnv("BUSINESS_NAME", "Hotel"),
		Address:            os.Getenv("BUSINESS_ADDRESS"),
		City:               os.Getenv("BUSINESS_CITY"),
		Phone:              os.Getenv("BUSINESS_PHONE"),
		Email:              os.Getenv("BUSINESS_EMAIL"),
		RegistrationNumber: os.Getenv("BUSINESS_REGISTRATION"),
		VATNumber:          os.Getenv("BUSINESS_VAT_NUMBER"),
		BankName:           os.Getenv("BUSINESS_BANK_NAME"),
		IBAN:               os.Getenv("BUSINESS_IBAN"),
		BIC:                os.Getenv("BUSINESS_BIC"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.OperatorPasswordHash == "" {
		return fmt.Errorf("OPERATOR_PASSWORD_HASH must be set")
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
