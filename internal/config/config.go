package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	StripeAPIKey         string
	StripeWebhookSecret  string
	Currency             string
	CheckoutSuccessURL   string
	CheckoutCancelURL    string
	AuthTokenSecret      string
	PendingSweepInterval time.Duration
	PendingOrderTTL      time.Duration
	SweepBatchSize       int
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultCurrency             = "inr"
	defaultAuthTokenSecret      = "change-me-in-production"
	defaultPendingSweepInterval = 5 * time.Minute
	defaultPendingOrderTTL      = 30 * time.Minute
	defaultSweepBatchSize       = 50
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from an optional .env file, environment
// variables and flags. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		StripeAPIKey:         getString(lookup, "STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret:  getString(lookup, "STRIPE_WEBHOOK_SECRET", ""),
		Currency:             getString(lookup, "CURRENCY", defaultCurrency),
		CheckoutSuccessURL:   getString(lookup, "CHECKOUT_SUCCESS_URL", ""),
		CheckoutCancelURL:    getString(lookup, "CHECKOUT_CANCEL_URL", ""),
		AuthTokenSecret:      getString(lookup, "AUTH_TOKEN_SECRET", defaultAuthTokenSecret),
		PendingSweepInterval: getDuration(lookup, "PENDING_SWEEP_INTERVAL", defaultPendingSweepInterval),
		PendingOrderTTL:      getDuration(lookup, "PENDING_ORDER_TTL", defaultPendingOrderTTL),
		SweepBatchSize:       getInt(lookup, "SWEEP_BATCH_SIZE", defaultSweepBatchSize),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("quickbite", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sweepIntervalStr   = cfg.PendingSweepInterval.String()
		pendingTTLStr      = cfg.PendingOrderTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.StripeAPIKey, "stripe-key", cfg.StripeAPIKey, "Stripe secret API key")
	fs.StringVar(&cfg.StripeWebhookSecret, "webhook-secret", cfg.StripeWebhookSecret, "Stripe webhook signing secret")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "Checkout currency code")
	fs.StringVar(&cfg.CheckoutSuccessURL, "success-url", cfg.CheckoutSuccessURL, "Redirect target after successful payment")
	fs.StringVar(&cfg.CheckoutCancelURL, "cancel-url", cfg.CheckoutCancelURL, "Redirect target after cancelled payment")
	fs.StringVar(&cfg.AuthTokenSecret, "auth-secret", cfg.AuthTokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between stale pending order sweeps")
	fs.StringVar(&pendingTTLStr, "pending-ttl", pendingTTLStr, "Age after which a pending order counts as stale")
	fs.IntVar(&cfg.SweepBatchSize, "sweep-batch", cfg.SweepBatchSize, "Maximum stale orders reported per sweep")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PendingSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.PendingOrderTTL, err = time.ParseDuration(pendingTTLStr); err != nil {
		return nil, fmt.Errorf("invalid pending ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthTokenSecret = string(content)
	}

	if secretFile, ok := lookup("STRIPE_WEBHOOK_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read webhook secret file: %w", err)
		}
		cfg.StripeWebhookSecret = string(content)
	}

	if cfg.SweepBatchSize <= 0 {
		cfg.SweepBatchSize = defaultSweepBatchSize
	}

	if cfg.PendingSweepInterval <= 0 {
		cfg.PendingSweepInterval = defaultPendingSweepInterval
	}

	if cfg.PendingOrderTTL <= 0 {
		cfg.PendingOrderTTL = defaultPendingOrderTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.StripeAPIKey == "" {
		return nil, fmt.Errorf("stripe API key must be provided")
	}

	if cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("stripe webhook secret must be provided")
	}

	if cfg.CheckoutSuccessURL == "" || cfg.CheckoutCancelURL == "" {
		return nil, fmt.Errorf("checkout success and cancel URLs must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
