package domain

// CartLine is one row in the cart. The unit price is captured when the line
// is first created and does not track later catalog price changes. Display
// fields are denormalized so the cart renders without a catalog lookup.
type CartLine struct {
	ProductID      string   `json:"productId"`
	Quantity       int      `json:"quantity"`
	UnitPriceCents int64    `json:"unitPriceCents"`
	NameEN         string   `json:"name_en"`
	NameAR         string   `json:"name_ar"`
	Category       Category `json:"category"`
	Image          string   `json:"image"`
}

// TotalCents is the line total at the frozen unit price.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// CartSnapshot is an immutable copy of the cart taken at a point in time.
// The checkout review step prices against a snapshot so a concurrent cart
// mutation cannot change an order the customer has already reviewed.
type CartSnapshot struct {
	Lines         []CartLine `json:"lines"`
	SubtotalCents int64      `json:"subtotalCents"`
	TotalItems    int        `json:"totalItems"`
}
