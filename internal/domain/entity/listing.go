package entity

// ListingItem is a marketplace listing owned by a store.
type ListingItem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	StoreID    StoreRef `json:"store_id"`
	PriceCents int64    `json:"price_cents"`
}

// ListingStoreRef extracts the owning store of a listing item.
func ListingStoreRef(item ListingItem) (StoreRef, bool) {
	if item.StoreID == "" {
		return "", false
	}

	return item.StoreID, true
}
