package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	KafkaBrokers []string

	// Ledger seed values. The admin address and fee percents are fixed at
	// first boot; subsequent boots reuse the persisted state.
	AdminAddress       string
	MintPrice          int64
	RoyaltyPercent     int
	PlatformFeePercent int

	SessionTTL time.Duration
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "nft-marketplace"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	admin := strings.TrimSpace(os.Getenv("ADMIN_ADDRESS"))
	if admin == "" {
		admin = "admin"
	}

	mintPrice, err := envInt64("MINT_PRICE", 1_000_000)
	if err != nil {
		return Config{}, err
	}
	royaltyPercent, err := envInt("ROYALTY_PERCENT", 5)
	if err != nil {
		return Config{}, err
	}
	platformFeePercent, err := envInt("PLATFORM_FEE_PERCENT", 2)
	if err != nil {
		return Config{}, err
	}
	if royaltyPercent < 0 || platformFeePercent < 0 || royaltyPercent+platformFeePercent >= 100 {
		return Config{}, fmt.Errorf("fee percents out of range: royalty=%d platform=%d", royaltyPercent, platformFeePercent)
	}

	sessionTTLHours, err := envInt("SESSION_TTL_HOURS", 24)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ServiceName:  service,
		HTTPPort:     port,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: brokers,

		AdminAddress:       admin,
		MintPrice:          mintPrice,
		RoyaltyPercent:     royaltyPercent,
		PlatformFeePercent: platformFeePercent,

		SessionTTL: time.Duration(sessionTTLHours) * time.Hour,
	}, nil
}

func envInt(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return value, nil
}

func envInt64(name string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return value, nil
}
