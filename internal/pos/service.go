package pos

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-backend/internal/catalog"
	"github.com/salepointhq/salepoint-backend/internal/notifications"
	"github.com/salepointhq/salepoint-backend/internal/sales"
	"github.com/salepointhq/salepoint-backend/pkg/enums"
	pkgerrors "github.com/salepointhq/salepoint-backend/pkg/errors"
	"github.com/salepointhq/salepoint-backend/pkg/logger"
	"github.com/salepointhq/salepoint-backend/pkg/metrics"
	"github.com/salepointhq/salepoint-backend/pkg/money"
)

type saleRecorder interface {
	Record(ctx context.Context, sale *sales.Sale) error
}

type feedPublisher interface {
	Publish(ctx context.Context, kind enums.NotificationKind, title, body string) (*notifications.Notification, error)
}

// CheckoutInput is the raw checkout request. The tendered amount is kept
// as entered so parse failures map to the invalid-tender rejection.
type CheckoutInput struct {
	PaymentMethod  string
	AmountTendered string
}

// Service exposes register sessions and their cart operations.
type Service interface {
	OpenSession(ctx context.Context) (uuid.UUID, error)
	Cart(ctx context.Context, sessionID uuid.UUID) (*CartSnapshot, error)
	AddItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*CartSnapshot, error)
	AddItemByBarcode(ctx context.Context, sessionID uuid.UUID, barcode string) (*CartSnapshot, error)
	AddCustomItem(ctx context.Context, sessionID uuid.UUID, name, price string) (*CartSnapshot, error)
	SetQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int) (*CartSnapshot, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*CartSnapshot, error)
	ClearCart(ctx context.Context, sessionID uuid.UUID) (*CartSnapshot, error)
	Checkout(ctx context.Context, sessionID uuid.UUID, input CheckoutInput) (*sales.Sale, error)
}

// ServiceParams collects the register service dependencies.
type ServiceParams struct {
	Catalog         catalog.Lookup
	Ledger          saleRecorder
	Feed            feedPublisher
	Metrics         *metrics.RegisterMetrics
	Logger          *logger.Logger
	TaxRateBps      int64
	Currency        string
	MaxLineQuantity int
}

type service struct {
	catalog         catalog.Lookup
	ledger          saleRecorder
	feed            feedPublisher
	metrics         *metrics.RegisterMetrics
	logg            *logger.Logger
	taxRateBps      int64
	currency        string
	maxLineQuantity int

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Cart

	now func() time.Time
}

// NewService builds a register service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog lookup required")
	}
	if params.Ledger == nil {
		return nil, fmt.Errorf("sale ledger required")
	}
	if params.TaxRateBps < 0 {
		return nil, fmt.Errorf("tax rate must be non-negative")
	}
	if params.MaxLineQuantity < 1 {
		params.MaxLineQuantity = 999
	}
	if params.Currency == "" {
		params.Currency = "USD"
	}
	return &service{
		catalog:         params.Catalog,
		ledger:          params.Ledger,
		feed:            params.Feed,
		metrics:         params.Metrics,
		logg:            params.Logger,
		taxRateBps:      params.TaxRateBps,
		currency:        params.Currency,
		maxLineQuantity: params.MaxLineQuantity,
		sessions:        make(map[uuid.UUID]*Cart),
		now:             time.Now,
	}, nil
}

func (s *service) OpenSession(ctx context.Context) (uuid.UUID, error) {
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = NewCart()
	s.mu.Unlock()

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, id.String()), "register.session_opened")
	}
	return id, nil
}

func (s *service) Cart(ctx context.Context, sessionID uuid.UUID) (*CartSnapshot, error) {
	cart, err := s.cartFor(sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(sessionID, cart), nil
}

func (s *service) AddItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*CartSnapshot, error) {
	cart, err := s.cartFor(sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(item); err != nil {
		return nil, s.reject(err)
	}
	return s.snapshot(sessionID, cart), nil
}

func (s *service) AddItemByBarcode(ctx context.Context, sessionID uuid.UUID, barcode string) (*CartSnapshot, error) {
	cart, err := s.cartFor(sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.catalog.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(item); err != nil {
		return nil, s.reject(err)
	}
	return s.snapshot(sessionID, cart), nil
}

func (s *service) AddCustomItem(ctx context.Context, sessionID uuid.UUID, name, price string) (*CartSnapshot, error) {
	cart, err := s.cartFor(sessionID)
	if err != nil {
		return nil, err
	}

	amount, err := money.Parse(price)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid custom item price")
	}

	if _, err := cart.AddCustomItem(name, amount); err != nil {
		return nil, err
	}
	return s.snapshot(sessionID, cart), nil
}

func (s *service) SetQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int) (*CartSnapshot, error) {
	cart, err := s.cartFor(sessionID)
	if err != nil {
		return nil, err
	}

	if quantity > s.maxLineQuantity {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity exceeds register limit").
			WithDetails(map[string]any{"max": s.maxLineQuantity})
	}

	line, ok := cart.Line(itemID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "line item not found")
	}

	// Custom lines have no catalog backing and therefore no stock bound.
	availableStock := -1
	if !line.Custom {
		item, err := s.catalog.Get(ctx, itemID)
		if err != nil {
			return nil, err
		}
		availableStock = item.Stock
	}

	if err := cart.SetQuantity(itemID, quantity, availableStock); err != nil {
		return nil, s.reject(err)
	}
	return s.snapshot(sessionID, cart), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*CartSnapshot, error) {
	cart, err := s.cartFor(sessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(itemID)
	return s.snapshot(sessionID, cart), nil
}

func (s *service) ClearCart(ctx context.Context, sessionID uuid.UUID) (*CartSnapshot, error) {
	cart, err := s.cartFor(sessionID)
	if err != nil {
		return nil, err
	}

	cart.Clear()
	return s.snapshot(sessionID, cart), nil
}

func (s *service) Checkout(ctx context.Context, sessionID uuid.UUID, input CheckoutInput) (*sales.Sale, error) {
	cart, err := s.cartFor(sessionID)
	if err != nil {
		return nil, err
	}

	method, err := enums.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
	}

	var tendered *money.Cents
	if method == enums.PaymentMethodCash {
		amount, err := money.Parse(input.AmountTendered)
		if err != nil {
			return nil, s.reject(errInvalidTender(err))
		}
		tendered = &amount
	}

	receipt, err := cart.Checkout(method, tendered, s.taxRateBps)
	if err != nil {
		return nil, s.reject(err)
	}

	sale := s.buildSale(receipt)

	if err := s.ledger.Record(ctx, sale); err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithSaleID(ctx, sale.ID.String()), "register.record_sale_failed", err)
		}
	}

	s.metrics.ObserveSale(method.String(), sale.TotalCents)
	s.publishSaleNotification(ctx, sale)

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"session_id":     sessionID.String(),
			"sale_id":        sale.ID.String(),
			"payment_method": method.String(),
			"total_cents":    sale.TotalCents,
		})
		s.logg.Info(logCtx, "register.sale_completed")
	}

	return sale, nil
}

func (s *service) cartFor(sessionID uuid.UUID) (*Cart, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}

	s.mu.RLock()
	cart, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "register session not found")
	}
	return cart, nil
}

func (s *service) buildSale(receipt *Receipt) *sales.Sale {
	lines := make([]sales.SaleLine, 0, len(receipt.Lines))
	for _, line := range receipt.Lines {
		lines = append(lines, sales.SaleLine{
			ItemID:         line.ItemID,
			Name:           line.Name,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
			LineTotalCents: line.LineTotalCents(),
		})
	}
	return &sales.Sale{
		ID:            uuid.New(),
		Lines:         lines,
		SubtotalCents: receipt.Totals.SubtotalCents,
		TaxCents:      receipt.Totals.TaxCents,
		TotalCents:    receipt.Totals.TotalCents,
		PaymentMethod: receipt.PaymentMethod,
		TenderedCents: receipt.TenderedCents,
		ChangeCents:   receipt.ChangeCents,
		CompletedAt:   s.now().UTC(),
	}
}

func (s *service) publishSaleNotification(ctx context.Context, sale *sales.Sale) {
	if s.feed == nil {
		return
	}
	body := fmt.Sprintf("Sale of %s completed via %s", sale.TotalCents, sale.PaymentMethod)
	if _, err := s.feed.Publish(ctx, enums.NotificationKindSale, "Sale completed", body); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithSaleID(ctx, sale.ID.String()), "register.notification_publish_failed")
	}
}

// reject counts a business rejection before propagating it unchanged.
func (s *service) reject(err error) error {
	if reason := ReasonOf(err); reason != "" {
		s.metrics.IncRejection(string(reason))
	}
	return err
}
