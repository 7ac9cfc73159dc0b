package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	pkgerrors "github.com/salepointhq/salepoint-backend/pkg/errors"
)

// CategoryAll is the listing wildcard used by the register UI.
const CategoryAll = "All"

// MemoryStore is an in-process catalog. Items are fixed at construction;
// reads take a shared lock so a future mutable backend can keep the shape.
type MemoryStore struct {
	mu        sync.RWMutex
	items     []Item
	byID      map[string]int
	byBarcode map[string]int
}

// NewMemoryStore validates and indexes the provided items.
func NewMemoryStore(items []Item) (*MemoryStore, error) {
	store := &MemoryStore{
		items:     make([]Item, 0, len(items)),
		byID:      make(map[string]int, len(items)),
		byBarcode: make(map[string]int, len(items)),
	}

	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return nil, fmt.Errorf("catalog item %q missing id", item.Name)
		}
		if item.PriceCents < 0 {
			return nil, fmt.Errorf("catalog item %s has negative price", item.ID)
		}
		if item.Stock < 0 {
			return nil, fmt.Errorf("catalog item %s has negative stock", item.ID)
		}
		if _, exists := store.byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog item id %s", item.ID)
		}
		idx := len(store.items)
		store.items = append(store.items, item)
		store.byID[item.ID] = idx
		if item.Barcode != "" {
			if _, exists := store.byBarcode[item.Barcode]; exists {
				return nil, fmt.Errorf("duplicate barcode %s", item.Barcode)
			}
			store.byBarcode[item.Barcode] = idx
		}
	}

	return store, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	item := s.items[idx]
	return &item, nil
}

func (s *MemoryStore) GetByBarcode(ctx context.Context, barcode string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byBarcode[barcode]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	item := s.items[idx]
	return &item, nil
}

func (s *MemoryStore) List(ctx context.Context, query ListQuery) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(query.Search))
	matches := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if !categoryMatches(query.Category, item.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(item.Barcode, search) {
			continue
		}
		matches = append(matches, item)
	}
	return matches, nil
}

// Categories returns the distinct categories in first-seen order, headed
// by the "All" wildcard.
func (s *MemoryStore) Categories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]struct{}{}
	categories := []string{CategoryAll}
	for _, item := range s.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories, nil
}

func categoryMatches(want, have string) bool {
	want = strings.TrimSpace(want)
	return want == "" || want == CategoryAll || want == have
}
