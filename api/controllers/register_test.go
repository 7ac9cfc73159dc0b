package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-backend/internal/catalog"
	"github.com/salepointhq/salepoint-backend/internal/notifications"
	"github.com/salepointhq/salepoint-backend/internal/pos"
	"github.com/salepointhq/salepoint-backend/internal/sales"
	"github.com/salepointhq/salepoint-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newRegisterService(t *testing.T) pos.Service {
	t.Helper()

	store, err := catalog.NewMemoryStore([]catalog.Item{
		{ID: "1", Name: "Coca-Cola 330ml", PriceCents: 300, Category: "Beverages", Stock: 45, Barcode: "123456789"},
		{ID: "2", Name: "Pringles Original", PriceCents: 299, Category: "Snacks", Stock: 1, Barcode: "987654321"},
	})
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	feed, err := notifications.NewService(notifications.NewMemoryRepository(0))
	if err != nil {
		t.Fatalf("notifications service: %v", err)
	}

	svc, err := pos.NewService(pos.ServiceParams{
		Catalog:    store,
		Ledger:     sales.NewLedger(),
		Feed:       feed,
		TaxRateBps: 800,
	})
	if err != nil {
		t.Fatalf("register service: %v", err)
	}
	return svc
}

func addRouteParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.RouteContext(r.Context())
	if routeCtx == nil {
		routeCtx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
	}
	routeCtx.URLParams.Add(key, value)
	return r
}

func openTestSession(t *testing.T, svc pos.Service) uuid.UUID {
	t.Helper()
	id, err := svc.OpenSession(context.Background())
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return id
}

func decodeEnvelope(t *testing.T, body []byte, dest any) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

type testAPIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func decodeErrorEnvelope(t *testing.T, body []byte) testAPIError {
	t.Helper()
	envelope := struct {
		Error testAPIError `json:"error"`
	}{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal error envelope: %v", err)
	}
	return envelope.Error
}

func TestOpenRegisterSession(t *testing.T) {
	svc := newRegisterService(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register/sessions", nil)
	resp := httptest.NewRecorder()
	OpenRegisterSession(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var data map[string]string
	decodeEnvelope(t, resp.Body.Bytes(), &data)
	if _, err := uuid.Parse(data["session_id"]); err != nil {
		t.Fatalf("session_id not a uuid: %q", data["session_id"])
	}
}

func TestAddCartItemRequiresIDOrBarcode(t *testing.T) {
	svc := newRegisterService(t)
	sessionID := openTestSession(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{}`))
	req = addRouteParam(req, "sessionId", sessionID.String())
	resp := httptest.NewRecorder()
	AddCartItem(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAddCartItemByBarcode(t *testing.T) {
	svc := newRegisterService(t)
	sessionID := openTestSession(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"barcode":"123456789"}`))
	req = addRouteParam(req, "sessionId", sessionID.String())
	resp := httptest.NewRecorder()
	AddCartItem(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var snap pos.CartSnapshot
	decodeEnvelope(t, resp.Body.Bytes(), &snap)
	if len(snap.Lines) != 1 || snap.Lines[0].Name != "Coca-Cola 330ml" {
		t.Fatalf("unexpected snapshot: %+v", snap.Lines)
	}
}

func TestAddCartItemStockExceeded(t *testing.T) {
	svc := newRegisterService(t)
	sessionID := openTestSession(t, svc)

	add := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"item_id":"2"}`))
		req = addRouteParam(req, "sessionId", sessionID.String())
		resp := httptest.NewRecorder()
		AddCartItem(svc, testLogger())(resp, req)
		return resp
	}

	if resp := add(); resp.Code != http.StatusOK {
		t.Fatalf("first add failed: %d", resp.Code)
	}
	resp := add()
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	apiErr := decodeErrorEnvelope(t, resp.Body.Bytes())
	if apiErr.Details["reason"] != "stock_exceeded" {
		t.Fatalf("unexpected details: %+v", apiErr.Details)
	}
}

func TestSetCartItemQuantityRoundTrip(t *testing.T) {
	svc := newRegisterService(t)
	sessionID := openTestSession(t, svc)
	if _, err := svc.AddItem(context.Background(), sessionID, "1"); err != nil {
		t.Fatalf("add item: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/cart/items/1", strings.NewReader(`{"quantity":3}`))
	req = addRouteParam(req, "sessionId", sessionID.String())
	req = addRouteParam(req, "itemId", "1")
	resp := httptest.NewRecorder()
	SetCartItemQuantity(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var snap pos.CartSnapshot
	decodeEnvelope(t, resp.Body.Bytes(), &snap)
	if snap.Lines[0].Quantity != 3 || snap.Totals.Total != "9.72" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestCheckoutHandlerEmptyCart(t *testing.T) {
	svc := newRegisterService(t)
	sessionID := openTestSession(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"card"}`))
	req = addRouteParam(req, "sessionId", sessionID.String())
	resp := httptest.NewRecorder()
	Checkout(svc, testLogger())(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
	apiErr := decodeErrorEnvelope(t, resp.Body.Bytes())
	if apiErr.Details["reason"] != "empty_cart" {
		t.Fatalf("unexpected details: %+v", apiErr.Details)
	}
}

func TestCheckoutHandlerCashSale(t *testing.T) {
	svc := newRegisterService(t)
	sessionID := openTestSession(t, svc)
	if _, err := svc.AddItem(context.Background(), sessionID, "1"); err != nil {
		t.Fatalf("add item: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"cash","amount_tendered":"5.00"}`))
	req = addRouteParam(req, "sessionId", sessionID.String())
	resp := httptest.NewRecorder()
	Checkout(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var sale sales.Sale
	decodeEnvelope(t, resp.Body.Bytes(), &sale)
	if sale.TotalCents != 324 {
		t.Fatalf("total = %d", sale.TotalCents)
	}
	if sale.ChangeCents == nil || *sale.ChangeCents != 176 {
		t.Fatalf("change = %v", sale.ChangeCents)
	}
}

func TestCheckoutHandlerInvalidMethod(t *testing.T) {
	svc := newRegisterService(t)
	sessionID := openTestSession(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"payment_method":"bitcoin"}`))
	req = addRouteParam(req, "sessionId", sessionID.String())
	resp := httptest.NewRecorder()
	Checkout(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestFetchCartUnknownSession(t *testing.T) {
	svc := newRegisterService(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req = addRouteParam(req, "sessionId", uuid.NewString())
	resp := httptest.NewRecorder()
	FetchCart(svc, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
