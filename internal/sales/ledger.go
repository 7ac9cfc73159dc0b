package sales

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-backend/pkg/enums"
	pkgerrors "github.com/salepointhq/salepoint-backend/pkg/errors"
	"github.com/salepointhq/salepoint-backend/pkg/money"
)

// SaleLine is one sold line as captured on the receipt.
type SaleLine struct {
	ItemID         string      `json:"item_id"`
	Name           string      `json:"name"`
	UnitPriceCents money.Cents `json:"unit_price_cents"`
	Quantity       int         `json:"quantity"`
	LineTotalCents money.Cents `json:"line_total_cents"`
}

// Sale is a completed, immutable transaction.
type Sale struct {
	ID            uuid.UUID           `json:"id"`
	Lines         []SaleLine          `json:"lines"`
	SubtotalCents money.Cents         `json:"subtotal_cents"`
	TaxCents      money.Cents         `json:"tax_cents"`
	TotalCents    money.Cents         `json:"total_cents"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	TenderedCents *money.Cents        `json:"tendered_cents,omitempty"`
	ChangeCents   *money.Cents        `json:"change_cents,omitempty"`
	CompletedAt   time.Time           `json:"completed_at"`
}

// Summary aggregates one day of completed sales.
type Summary struct {
	Date          string                              `json:"date"`
	SaleCount     int                                 `json:"sale_count"`
	GrossCents    money.Cents                         `json:"gross_cents"`
	TaxCents      money.Cents                         `json:"tax_cents"`
	ByMethod      map[enums.PaymentMethod]int         `json:"by_method"`
	GrossByMethod map[enums.PaymentMethod]money.Cents `json:"gross_by_method"`
}

// Ledger keeps completed sales in memory, newest first on read.
type Ledger struct {
	mu    sync.RWMutex
	sales []Sale
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends a completed sale. Sales are append-only.
func (l *Ledger) Record(ctx context.Context, sale *Sale) error {
	if sale == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "sale required")
	}
	if sale.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "sale id required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.sales = append(l.sales, *sale)
	return nil
}

// List returns up to limit sales, most recent first. A non-positive limit
// applies the default page size.
func (l *Ledger) List(ctx context.Context, limit int) ([]Sale, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.sales)
	if limit > n {
		limit = n
	}
	out := make([]Sale, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, l.sales[i])
	}
	return out, nil
}

// SummaryForDay aggregates sales completed on the given UTC calendar day.
func (l *Ledger) SummaryForDay(ctx context.Context, day time.Time) (*Summary, error) {
	day = day.UTC()
	summary := &Summary{
		Date:          day.Format("2006-01-02"),
		ByMethod:      make(map[enums.PaymentMethod]int),
		GrossByMethod: make(map[enums.PaymentMethod]money.Cents),
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, sale := range l.sales {
		completed := sale.CompletedAt.UTC()
		if completed.Year() != day.Year() || completed.YearDay() != day.YearDay() {
			continue
		}
		summary.SaleCount++
		summary.GrossCents += sale.TotalCents
		summary.TaxCents += sale.TaxCents
		summary.ByMethod[sale.PaymentMethod]++
		summary.GrossByMethod[sale.PaymentMethod] += sale.TotalCents
	}
	return summary, nil
}

const defaultListLimit = 20
