package controllers

import (
	"net/http"

	"github.com/salepointhq/salepoint-backend/api/responses"
	"github.com/salepointhq/salepoint-backend/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SalePoint-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}
