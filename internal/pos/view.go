package pos

import (
	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-backend/pkg/money"
)

// LineView is the wire shape of one cart line.
type LineView struct {
	ItemID         string      `json:"item_id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	UnitPrice      string      `json:"unit_price"`
	UnitPriceCents money.Cents `json:"unit_price_cents"`
	Quantity       int         `json:"quantity"`
	LineTotal      string      `json:"line_total"`
	LineTotalCents money.Cents `json:"line_total_cents"`
	Custom         bool        `json:"custom,omitempty"`
}

// TotalsView carries the money summary with both cents and display forms.
type TotalsView struct {
	Currency      string      `json:"currency"`
	Subtotal      string      `json:"subtotal"`
	SubtotalCents money.Cents `json:"subtotal_cents"`
	Tax           string      `json:"tax"`
	TaxCents      money.Cents `json:"tax_cents"`
	Total         string      `json:"total"`
	TotalCents    money.Cents `json:"total_cents"`
}

// CartSnapshot is the full cart view returned by every mutation so the
// register UI can re-render without a second fetch.
type CartSnapshot struct {
	SessionID uuid.UUID  `json:"session_id"`
	Lines     []LineView `json:"lines"`
	Totals    TotalsView `json:"totals"`
}

func (s *service) snapshot(sessionID uuid.UUID, cart *Cart) *CartSnapshot {
	lines := cart.Lines()
	totals := ComputeTotals(lines, s.taxRateBps)

	views := make([]LineView, 0, len(lines))
	for _, line := range lines {
		lineTotal := line.LineTotalCents()
		views = append(views, LineView{
			ItemID:         line.ItemID,
			Name:           line.Name,
			Category:       line.Category,
			UnitPrice:      line.UnitPriceCents.String(),
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
			LineTotal:      lineTotal.String(),
			LineTotalCents: lineTotal,
			Custom:         line.Custom,
		})
	}

	return &CartSnapshot{
		SessionID: sessionID,
		Lines:     views,
		Totals: TotalsView{
			Currency:      s.currency,
			Subtotal:      totals.SubtotalCents.String(),
			SubtotalCents: totals.SubtotalCents,
			Tax:           totals.TaxCents.String(),
			TaxCents:      totals.TaxCents,
			Total:         totals.TotalCents.String(),
			TotalCents:    totals.TotalCents,
		},
	}
}
