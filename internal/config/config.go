package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Env      string
	HTTPAddr string
	DBDSN    string

	Paystack PaystackConfig
	Pricing  PricingConfig
	SMTP     SMTPConfig
	Mail     MailConfig
}

type PaystackConfig struct {
	SecretKey   string
	BaseURL     string
	CallbackURL string
}

// PricingConfig is the payment policy: card payments are priced per unit,
// subscription payments at a flat rate regardless of duration.
type PricingConfig struct {
	UnitCardPrice     int
	SubscriptionPrice int
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string // "", "tls" or "starttls"
	SkipVerifyTLS bool
}

type MailConfig struct {
	FromAddr string
	FromName string
}

// Load reads configuration from the environment. DB_DSN and
// PAYSTACK_SECRET_KEY are required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		Env:      getenv("APP_ENV", "development"),
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		DBDSN:    os.Getenv("DB_DSN"),
		Paystack: PaystackConfig{
			SecretKey:   os.Getenv("PAYSTACK_SECRET_KEY"),
			BaseURL:     getenv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			CallbackURL: os.Getenv("PAYSTACK_CALLBACK_URL"),
		},
		Pricing: PricingConfig{
			UnitCardPrice:     getenvInt("UNIT_CARD_PRICE", 4000),
			SubscriptionPrice: getenvInt("SUBSCRIPTION_PRICE", 34000),
		},
		SMTP: SMTPConfig{
			Host:          getenv("SMTP_HOST", "localhost"),
			Port:          getenv("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: getenv("SMTP_SKIP_VERIFY_TLS", "") == "true",
		},
		Mail: MailConfig{
			FromAddr: getenv("EMAIL_FROM", "no-reply@tapsync.local"),
			FromName: getenv("EMAIL_FROM_NAME", "TapSync"),
		},
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("config: DB_DSN is required")
	}
	if cfg.Paystack.SecretKey == "" {
		return Config{}, fmt.Errorf("config: PAYSTACK_SECRET_KEY is required")
	}
	if cfg.Pricing.UnitCardPrice <= 0 || cfg.Pricing.SubscriptionPrice <= 0 {
		return Config{}, fmt.Errorf("config: prices must be positive")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
