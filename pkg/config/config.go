package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Sales         SalesConfig
	CORS          CORSConfig
	Notifications NotificationsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Sales.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALEPOINT_APP_ENV" default:"dev"`
	Port         string `envconfig:"SALEPOINT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SALEPOINT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALEPOINT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SalesConfig carries the register's money rules. The tax rate is held in
// basis points so the arithmetic stays integral end to end.
type SalesConfig struct {
	TaxRateBps      int64  `envconfig:"SALEPOINT_SALES_TAX_RATE_BPS" default:"800"`
	Currency        string `envconfig:"SALEPOINT_SALES_CURRENCY" default:"USD"`
	MaxLineQuantity int    `envconfig:"SALEPOINT_SALES_MAX_LINE_QTY" default:"999"`
}

func (s SalesConfig) validate() error {
	if s.TaxRateBps < 0 {
		return fmt.Errorf("%s must be non-negative", EnvSalesTaxRateBps)
	}
	if s.MaxLineQuantity < 1 {
		return fmt.Errorf("%s must be at least 1", EnvSalesMaxLineQty)
	}
	return nil
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SALEPOINT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type NotificationsConfig struct {
	FeedCap int `envconfig:"SALEPOINT_NOTIFICATIONS_FEED_CAP" default:"200"`
}
