package config

import (
	"errors"
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

	// AdminAddress fixes the administrator identity once at bootstrap.
	// There is no runtime path to change it.
	AdminAddress string

	OutboxBatchSize    int
	OutboxPollInterval time.Duration
	IdempotencyTTL     time.Duration

	EnableRoleOutboxRelay         bool
	EnablePreferenceOutboxRelay   bool
	EnableCampaignOutboxRelay     bool
	EnableDistributionOutboxRelay bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "madison"
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
		return Config{}, errors.New("ADMIN_ADDRESS is required")
	}

	return Config{
		ServiceName:  service,
		HTTPPort:     port,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: brokers,
		AdminAddress: admin,

		OutboxBatchSize:    envInt("OUTBOX_BATCH_SIZE", 100),
		OutboxPollInterval: envDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		IdempotencyTTL:     envDuration("IDEMPOTENCY_TTL", 7*24*time.Hour),

		EnableRoleOutboxRelay:         envBool("ENABLE_ROLE_OUTBOX_RELAY", true),
		EnablePreferenceOutboxRelay:   envBool("ENABLE_PREFERENCE_OUTBOX_RELAY", true),
		EnableCampaignOutboxRelay:     envBool("ENABLE_CAMPAIGN_OUTBOX_RELAY", true),
		EnableDistributionOutboxRelay: envBool("ENABLE_DISTRIBUTION_OUTBOX_RELAY", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
