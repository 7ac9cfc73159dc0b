package catalog

import (
	"context"

	"github.com/salepointhq/salepoint-backend/pkg/money"
)

// Item is a sellable product as the register sees it. The cart snapshots
// name and price at add time and never writes back to the catalog.
type Item struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	PriceCents money.Cents `json:"price_cents"`
	Category   string      `json:"category"`
	Stock      int         `json:"stock"`
	Barcode    string      `json:"barcode,omitempty"`
}

// ListQuery filters catalog listings. An empty or "All" category matches
// every item; the search term matches name or barcode, case-insensitively.
type ListQuery struct {
	Category string
	Search   string
}

// Lookup is the read-only catalog contract the cart engine depends on.
type Lookup interface {
	Get(ctx context.Context, id string) (*Item, error)
	GetByBarcode(ctx context.Context, barcode string) (*Item, error)
	List(ctx context.Context, query ListQuery) ([]Item, error)
	Categories(ctx context.Context) ([]string, error)
}
