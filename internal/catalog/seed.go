package catalog

// SampleItems returns the demo storefront inventory used when no backing
// catalog is configured.
func SampleItems() []Item {
	return []Item{
		{ID: "1", Name: "Coca-Cola 330ml", PriceCents: 300, Category: "Beverages", Stock: 45, Barcode: "123456789"},
		{ID: "2", Name: "Pringles Original", PriceCents: 299, Category: "Snacks", Stock: 23, Barcode: "987654321"},
		{ID: "3", Name: "Samsung Galaxy Buds", PriceCents: 14999, Category: "Electronics", Stock: 8, Barcode: "456789123"},
		{ID: "4", Name: "Energy Drink", PriceCents: 450, Category: "Beverages", Stock: 67, Barcode: "789123456"},
		{ID: "5", Name: "iPhone Charger", PriceCents: 2999, Category: "Electronics", Stock: 15, Barcode: "321654987"},
		{ID: "6", Name: "Protein Bar", PriceCents: 349, Category: "Snacks", Stock: 34, Barcode: "654987321"},
		{ID: "7", Name: "Bottled Water", PriceCents: 150, Category: "Beverages", Stock: 89, Barcode: "147258369"},
		{ID: "8", Name: "Phone Case", PriceCents: 1999, Category: "Electronics", Stock: 12, Barcode: "963852741"},
	}
}
