package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jongchichi12/convenience-store-system/internal/catalog"
)

// DateLayout is the accepted format for the reference-date override.
const DateLayout = "2006-01-02"

// Config holds everything the report binary needs for one run.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Report ReportConfig `mapstructure:"report"`
}

// AppConfig identifies the process.
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// ReportConfig carries the reporting policies.
// Discount maps days-remaining (decimal string keys, since yaml map keys
// arrive as strings) to a discount fraction in [0,1). Missing days mean no
// discount, including days beyond the largest key.
type ReportConfig struct {
	StockThreshold   float64            `mapstructure:"stock_threshold"`
	ExpiryWindowDays int                `mapstructure:"expiry_window_days"`
	TopSellerLimit   int                `mapstructure:"top_seller_limit"`
	Date             string             `mapstructure:"date"`
	Discount         map[string]float64 `mapstructure:"discount"`
}

// Load reads the yaml config at configPath. An empty path skips the file and
// yields the built-in defaults, so the binary runs with no config at all.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "convenience-store-report")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("report.stock_threshold", 0.3)
	v.SetDefault("report.expiry_window_days", 3)
	v.SetDefault("report.top_seller_limit", 5)
	v.SetDefault("report.date", "")
	v.SetDefault("report.discount", map[string]float64{
		"0": 0.70,
		"1": 0.50,
		"2": 0.30,
		"3": 0.20,
	})
}

// Validate rejects configs the report engine cannot run with.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Report.StockThreshold < 0 || c.Report.StockThreshold > 1 {
		return fmt.Errorf("report.stock_threshold must be in [0,1], got %v", c.Report.StockThreshold)
	}
	if c.Report.ExpiryWindowDays < 0 {
		return fmt.Errorf("report.expiry_window_days must be >= 0, got %d", c.Report.ExpiryWindowDays)
	}
	if c.Report.TopSellerLimit < 0 {
		return fmt.Errorf("report.top_seller_limit must be >= 0, got %d", c.Report.TopSellerLimit)
	}
	if c.Report.Date != "" {
		if _, err := time.Parse(DateLayout, c.Report.Date); err != nil {
			return fmt.Errorf("report.date must be %s: %w", DateLayout, err)
		}
	}
	for key, rate := range c.Report.Discount {
		days, err := strconv.Atoi(key)
		if err != nil || days < 0 {
			return fmt.Errorf("report.discount key %q must be a non-negative day count", key)
		}
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("report.discount[%s] must be in [0,1), got %v", key, rate)
		}
	}
	return nil
}

// Policy converts the discount table into the catalog form.
// Validate must have accepted the config first.
func (c *Config) Policy() catalog.DiscountPolicy {
	policy := make(catalog.DiscountPolicy, len(c.Report.Discount))
	for key, rate := range c.Report.Discount {
		days, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		policy[days] = decimal.NewFromFloat(rate)
	}
	return policy
}

// ReferenceDate resolves the report's "today". An empty override means the
// wall clock.
func (c *Config) ReferenceDate() (time.Time, error) {
	if c.Report.Date == "" {
		return time.Now(), nil
	}
	return time.Parse(DateLayout, c.Report.Date)
}
