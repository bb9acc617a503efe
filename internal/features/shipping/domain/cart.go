package domain

// Product is the snapshot of a catalog product embedded in a cart item.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SupplierID string `json:"supplier_id"`
	// Price is the unit price. Non-negative.
	Price float64 `json:"price"`
	// WeightKg is the unit weight. Absent weight is treated as zero.
	WeightKg float64 `json:"weight_kg,omitempty"`
}

// CartItem is one line of a customer cart.
type CartItem struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Product  Product `json:"product"`
}

// ShippingAddress is the delivery destination. Both fields are optional
// free-text and compared case-insensitively against rate location fields.
type ShippingAddress struct {
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// SupplierGroup is the portion of a cart owned by a single supplier. A
// shipping calculation never mixes items from different suppliers.
type SupplierGroup struct {
	SupplierID string
	Items      []CartItem
}

// GroupBySupplier splits cart items by their product's supplier, preserving
// the order in which each supplier first appears so breakdowns come out
// deterministic for identical input.
func GroupBySupplier(items []CartItem) []SupplierGroup {
	index := make(map[string]int, len(items))
	groups := make([]SupplierGroup, 0, len(items))

	for _, item := range items {
		id := item.Product.SupplierID
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, SupplierGroup{SupplierID: id})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// Subtotal sums price times quantity across the items.
func Subtotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// TotalWeightKg sums unit weight times quantity across the items.
func TotalWeightKg(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.WeightKg * float64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities across the items.
func ItemCount(items []CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
