package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.App.Port)
	}
	if cfg.Sales.TaxRateBps != 800 {
		t.Fatalf("expected 8%% default tax rate, got %d bps", cfg.Sales.TaxRateBps)
	}
	if cfg.Sales.Currency != "USD" {
		t.Fatalf("expected USD default currency, got %q", cfg.Sales.Currency)
	}
	if !cfg.App.IsDev() {
		t.Fatal("expected dev environment by default")
	}
}

func TestLoadRejectsNegativeTaxRate(t *testing.T) {
	t.Setenv(EnvSalesTaxRateBps, "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative tax rate")
	}
}

func TestLoadRejectsZeroMaxLineQuantity(t *testing.T) {
	t.Setenv(EnvSalesMaxLineQty, "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero max line quantity")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	t.Parallel()

	app := AppConfig{Env: "PROD"}
	if !app.IsProd() || app.IsDev() {
		t.Fatalf("env helpers mismatched for %q", app.Env)
	}
}
