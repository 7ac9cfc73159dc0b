package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/salepointhq/salepoint-backend/api/responses"
	"github.com/salepointhq/salepoint-backend/internal/sales"
	pkgerrors "github.com/salepointhq/salepoint-backend/pkg/errors"
	"github.com/salepointhq/salepoint-backend/pkg/logger"
)

// ListSales returns recent completed sales, newest first.
func ListSales(ledger *sales.Ledger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitStr := strings.TrimSpace(r.URL.Query().Get("limit")); limitStr != "" {
			value, err := strconv.Atoi(limitStr)
			if err != nil || value <= 0 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer"))
				return
			}
			limit = value
		}

		listed, err := ledger.List(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listed)
	}
}

// SalesSummary aggregates one UTC day of sales. Defaults to today.
func SalesSummary(ledger *sales.Ledger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := time.Now().UTC()
		if dateStr := strings.TrimSpace(r.URL.Query().Get("date")); dateStr != "" {
			parsed, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be YYYY-MM-DD"))
				return
			}
			day = parsed
		}

		summary, err := ledger.SummaryForDay(r.Context(), day)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
