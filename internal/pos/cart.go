package pos

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-backend/internal/catalog"
	"github.com/salepointhq/salepoint-backend/pkg/enums"
	pkgerrors "github.com/salepointhq/salepoint-backend/pkg/errors"
	"github.com/salepointhq/salepoint-backend/pkg/money"
)

// LineItem is one cart row: a catalog reference plus the name and unit
// price snapshotted when the item was added. Quantity is always >= 1; a
// line reduced to zero is removed, never kept.
type LineItem struct {
	ItemID         string      `json:"item_id"`
	Name           string      `json:"name"`
	UnitPriceCents money.Cents `json:"unit_price_cents"`
	Category       string      `json:"category"`
	Quantity       int         `json:"quantity"`
	Custom         bool        `json:"custom,omitempty"`
}

// LineTotalCents returns unit price x quantity.
func (l LineItem) LineTotalCents() money.Cents {
	return money.Line(l.UnitPriceCents, l.Quantity)
}

// Totals is the derived money view of a cart. It is never stored.
type Totals struct {
	SubtotalCents money.Cents `json:"subtotal_cents"`
	TaxCents      money.Cents `json:"tax_cents"`
	TotalCents    money.Cents `json:"total_cents"`
}

// Receipt is the finalized snapshot returned by a successful checkout.
type Receipt struct {
	Lines         []LineItem
	Totals        Totals
	PaymentMethod enums.PaymentMethod
	TenderedCents *money.Cents
	ChangeCents   *money.Cents
}

// Cart holds the line items of one in-progress sale. A mutex serializes
// mutation so racing handlers always observe a consistent prior state;
// every operation either fully applies or leaves the cart untouched.
type Cart struct {
	mu    sync.Mutex
	lines []LineItem
	index map[string]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// AddItem adds one unit of a catalog item, merging into an existing line
// when the item is already carted. Stock is checked against the snapshot
// supplied by the caller.
func (c *Cart) AddItem(item *catalog.Item) error {
	if item == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "catalog item required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.index[item.ID]; ok {
		if c.lines[idx].Quantity+1 > item.Stock {
			return errStockExceeded(item.ID, item.Stock)
		}
		c.lines[idx].Quantity++
		return nil
	}

	if item.Stock < 1 {
		return errOutOfStock(item.ID)
	}

	c.insert(LineItem{
		ItemID:         item.ID,
		Name:           item.Name,
		UnitPriceCents: item.PriceCents,
		Category:       item.Category,
		Quantity:       1,
	})
	return nil
}

// AddCustomItem appends an ad-hoc priced line with no catalog backing and
// no stock ceiling. Each call creates a new line.
func (c *Cart) AddCustomItem(name string, price money.Cents) (LineItem, error) {
	if price < 0 {
		return LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "custom item price must be non-negative")
	}
	if name == "" {
		name = "Custom Item"
	}

	line := LineItem{
		ItemID:         fmt.Sprintf("custom-%s", uuid.NewString()),
		Name:           name,
		UnitPriceCents: price,
		Category:       "Custom",
		Quantity:       1,
		Custom:         true,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.insert(line)
	return line, nil
}

// SetQuantity sets a line's quantity to an absolute value. A quantity of
// zero or less removes the line. availableStock < 0 means unbounded
// (custom lines).
func (c *Cart) SetQuantity(itemID string, quantity, availableStock int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.index[itemID]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "line item not found")
	}

	if quantity <= 0 {
		c.remove(idx)
		return nil
	}
	if availableStock >= 0 && quantity > availableStock {
		return errStockExceeded(itemID, availableStock)
	}

	c.lines[idx].Quantity = quantity
	return nil
}

// RemoveItem deletes a line if present. Removing an absent line is a
// no-op, so the operation is idempotent.
func (c *Cart) RemoveItem(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.index[itemID]; ok {
		c.remove(idx)
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLines()
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Line looks up a line by item id.
func (c *Cart) Line(itemID string) (LineItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.index[itemID]
	if !ok {
		return LineItem{}, false
	}
	return c.lines[idx], true
}

// Totals computes subtotal, tax and total for the given rate without
// mutating the cart. An empty cart yields zeros.
func (c *Cart) Totals(taxRateBps int64) Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalsLocked(taxRateBps)
}

// Checkout validates the sale and, on success, returns the finalized
// receipt and resets the cart in the same critical section. On any
// rejection the cart is byte-for-byte unchanged.
func (c *Cart) Checkout(method enums.PaymentMethod, tendered *money.Cents, taxRateBps int64) (*Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil, errEmptyCart()
	}

	totals := c.totalsLocked(taxRateBps)

	receipt := &Receipt{
		Lines:         c.snapshotLines(),
		Totals:        totals,
		PaymentMethod: method,
	}

	if method == enums.PaymentMethodCash {
		if tendered == nil {
			return nil, errInvalidTender(nil)
		}
		if *tendered < totals.TotalCents {
			return nil, errInsufficientTender(*tendered, totals.TotalCents)
		}
		amount := *tendered
		change := amount - totals.TotalCents
		receipt.TenderedCents = &amount
		receipt.ChangeCents = &change
	}

	c.reset()
	return receipt, nil
}

func (c *Cart) totalsLocked(taxRateBps int64) Totals {
	return ComputeTotals(c.lines, taxRateBps)
}

// ComputeTotals derives the money view of a set of lines. Pure; an empty
// set yields zeros.
func ComputeTotals(lines []LineItem, taxRateBps int64) Totals {
	var subtotal money.Cents
	for _, line := range lines {
		subtotal += line.LineTotalCents()
	}
	tax := money.Tax(subtotal, taxRateBps)
	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}

func (c *Cart) snapshotLines() []LineItem {
	lines := make([]LineItem, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) insert(line LineItem) {
	c.index[line.ItemID] = len(c.lines)
	c.lines = append(c.lines, line)
}

func (c *Cart) remove(idx int) {
	delete(c.index, c.lines[idx].ItemID)
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	for i := idx; i < len(c.lines); i++ {
		c.index[c.lines[i].ItemID] = i
	}
}

func (c *Cart) reset() {
	c.lines = nil
	c.index = make(map[string]int)
}
