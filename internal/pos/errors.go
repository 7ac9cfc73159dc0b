package pos

import (
	pkgerrors "github.com/salepointhq/salepoint-backend/pkg/errors"
	"github.com/salepointhq/salepoint-backend/pkg/money"
)

// RejectionReason identifies why a cart operation was refused. Every
// rejection is a recoverable business outcome surfaced to the cashier,
// never a process failure.
type RejectionReason string

const (
	ReasonOutOfStock         RejectionReason = "out_of_stock"
	ReasonStockExceeded      RejectionReason = "stock_exceeded"
	ReasonEmptyCart          RejectionReason = "empty_cart"
	ReasonInvalidTender      RejectionReason = "invalid_tender_amount"
	ReasonInsufficientTender RejectionReason = "insufficient_tender"
)

func errOutOfStock(itemID string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeConflict, "item is out of stock").
		WithDetails(map[string]any{
			"reason":  ReasonOutOfStock,
			"item_id": itemID,
		})
}

func errStockExceeded(itemID string, available int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeConflict, "requested quantity exceeds available stock").
		WithDetails(map[string]any{
			"reason":    ReasonStockExceeded,
			"item_id":   itemID,
			"available": available,
		})
}

func errEmptyCart() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty").
		WithDetails(map[string]any{
			"reason": ReasonEmptyCart,
		})
}

func errInvalidTender(cause error) *pkgerrors.Error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, cause, "amount tendered is invalid").
		WithDetails(map[string]any{
			"reason": ReasonInvalidTender,
		})
}

func errInsufficientTender(tendered, total money.Cents) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, "insufficient amount tendered").
		WithDetails(map[string]any{
			"reason":         ReasonInsufficientTender,
			"tendered_cents": tendered,
			"total_cents":    total,
		})
}

// ReasonOf extracts the rejection reason from an error, or "" when the
// error is not a cart rejection.
func ReasonOf(err error) RejectionReason {
	typed := pkgerrors.As(err)
	if typed == nil {
		return ""
	}
	details, ok := typed.Details().(map[string]any)
	if !ok {
		return ""
	}
	reason, ok := details["reason"].(RejectionReason)
	if !ok {
		return ""
	}
	return reason
}
