package catalog

import (
	"context"
	"testing"

	pkgerrors "github.com/salepointhq/salepoint-backend/pkg/errors"
)

func TestMemoryStoreGet(t *testing.T) {
	t.Parallel()

	store := newSampleStore(t)

	item, err := store.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Coca-Cola 330ml" || item.PriceCents != 300 || item.Stock != 45 {
		t.Fatalf("unexpected item: %+v", item)
	}

	if _, err := store.Get(context.Background(), "missing"); err == nil {
		t.Fatal("expected not-found error")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestMemoryStoreGetByBarcode(t *testing.T) {
	t.Parallel()

	store := newSampleStore(t)

	item, err := store.GetByBarcode(context.Background(), "987654321")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "2" {
		t.Fatalf("expected Pringles, got %+v", item)
	}

	if _, err := store.GetByBarcode(context.Background(), "000"); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestMemoryStoreListFilters(t *testing.T) {
	t.Parallel()

	store := newSampleStore(t)
	ctx := context.Background()

	all, err := store.List(ctx, ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("expected full catalog, got %d items", len(all))
	}

	wildcard, _ := store.List(ctx, ListQuery{Category: CategoryAll})
	if len(wildcard) != len(all) {
		t.Fatalf("All category should not filter, got %d items", len(wildcard))
	}

	beverages, _ := store.List(ctx, ListQuery{Category: "Beverages"})
	if len(beverages) != 3 {
		t.Fatalf("expected 3 beverages, got %d", len(beverages))
	}

	byName, _ := store.List(ctx, ListQuery{Search: "cola"})
	if len(byName) != 1 || byName[0].ID != "1" {
		t.Fatalf("name search failed: %+v", byName)
	}

	byBarcode, _ := store.List(ctx, ListQuery{Search: "987654321"})
	if len(byBarcode) != 1 || byBarcode[0].ID != "2" {
		t.Fatalf("barcode search failed: %+v", byBarcode)
	}

	none, _ := store.List(ctx, ListQuery{Category: "Snacks", Search: "cola"})
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %+v", none)
	}
}

func TestMemoryStoreCategories(t *testing.T) {
	t.Parallel()

	store := newSampleStore(t)

	categories, err := store.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{CategoryAll, "Beverages", "Snacks", "Electronics"}
	if len(categories) != len(want) {
		t.Fatalf("categories = %v", categories)
	}
	for i, category := range want {
		if categories[i] != category {
			t.Fatalf("categories[%d] = %q, want %q", i, categories[i], category)
		}
	}
}

func TestNewMemoryStoreRejectsBadSeed(t *testing.T) {
	t.Parallel()

	cases := [][]Item{
		{{ID: "", Name: "no id", PriceCents: 100}},
		{{ID: "1", PriceCents: -1}},
		{{ID: "1", Stock: -1}},
		{{ID: "1"}, {ID: "1"}},
		{{ID: "1", Barcode: "x"}, {ID: "2", Barcode: "x"}},
	}
	for _, items := range cases {
		if _, err := NewMemoryStore(items); err == nil {
			t.Fatalf("expected error for seed %+v", items)
		}
	}
}

func newSampleStore(t *testing.T) *MemoryStore {
	t.Helper()
	store, err := NewMemoryStore(SampleItems())
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}
