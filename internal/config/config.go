package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Storefront StorefrontConfig
	Events     EventsConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// StorefrontConfig sizes the synthetic data and the dashboard.
type StorefrontConfig struct {
	CatalogSize  int
	CartSize     int
	CheckoutSize int
	SeedOrders   int
	PageSize     int
	Shipping     decimal.Decimal
	// ToastDuration is how long list notices stay visible.
	ToastDuration time.Duration
	// DetailToastDuration is used for notices raised from a product page.
	DetailToastDuration time.Duration
}

// EventsConfig holds event streaming configuration.
type EventsConfig struct {
	// StreamBuffer is the per-client buffer of the event stream.
	StreamBuffer int
}

// defaults maps every environment key to its default value.
var defaults = map[string]any{
	"SERVER_HOST":           "0.0.0.0",
	"SERVER_PORT":           8080,
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "json",
	"CATALOG_SIZE":          15,
	"CART_SIZE":             5,
	"CHECKOUT_SIZE":         5,
	"SEED_ORDERS":           32,
	"PAGE_SIZE":             10,
	"SHIPPING_FLAT":         "9.99",
	"TOAST_DURATION":        1200 * time.Millisecond,
	"DETAIL_TOAST_DURATION": 1400 * time.Millisecond,
	"EVENT_BUFFER":          16,
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	v := newViper()

	shipping, err := decimal.NewFromString(v.GetString("SHIPPING_FLAT"))
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: invalid shipping amount %q: %w", v.GetString("SHIPPING_FLAT"), err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Storefront: StorefrontConfig{
			CatalogSize:         v.GetInt("CATALOG_SIZE"),
			CartSize:            v.GetInt("CART_SIZE"),
			CheckoutSize:        v.GetInt("CHECKOUT_SIZE"),
			SeedOrders:          v.GetInt("SEED_ORDERS"),
			PageSize:            v.GetInt("PAGE_SIZE"),
			Shipping:            shipping.Round(2),
			ToastDuration:       v.GetDuration("TOAST_DURATION"),
			DetailToastDuration: v.GetDuration("DETAIL_TOAST_DURATION"),
		},
		Events: EventsConfig{
			StreamBuffer: v.GetInt("EVENT_BUFFER"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Storefront.CatalogSize < 1 {
		return fmt.Errorf("catalog size must be at least 1")
	}

	if c.Storefront.CartSize < 0 || c.Storefront.CheckoutSize < 0 {
		return fmt.Errorf("cart and checkout sizes cannot be negative")
	}

	if c.Storefront.SeedOrders < 0 {
		return fmt.Errorf("seed orders cannot be negative")
	}

	if c.Storefront.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1")
	}

	if c.Storefront.Shipping.IsNegative() {
		return fmt.Errorf("shipping amount cannot be negative")
	}

	if c.Storefront.ToastDuration <= 0 || c.Storefront.DetailToastDuration <= 0 {
		return fmt.Errorf("toast durations must be positive")
	}

	if c.Events.StreamBuffer < 1 {
		return fmt.Errorf("event buffer must be at least 1")
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
