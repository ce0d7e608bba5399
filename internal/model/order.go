package model

// LineItem is one cart entry: a product with a quantity. The JSON shape is
// shared between the persisted cart file and the checkout payload.
type LineItem struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Qty        int    `json:"qty"`
}

// LineTotal is price times quantity, in minor units.
func (l LineItem) LineTotal() int64 {
	return l.PriceCents * int64(l.Qty)
}

// Customer holds the checkout form fields. Notes is optional.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CheckoutRequest is the snapshot sent to POST /api/checkout. Built at
// submit time, never persisted.
type CheckoutRequest struct {
	Customer Customer   `json:"customer"`
	Items    []LineItem `json:"items"`
}

// CheckoutResponse is the success payload of POST /api/checkout.
type CheckoutResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	AmountCents   int64  `json:"amount_cents,omitempty"`
	Currency      string `json:"currency,omitempty"`
}
