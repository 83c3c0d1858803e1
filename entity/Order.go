package entity

import "github.com/shopspring/decimal"

// Order is a submitted (or being-edited) collection of line items owned by a
// register. ID is assigned by the backend and empty for orders not yet
// created. IsZeroOrder marks complimentary orders whose total is forced to 0;
// on the wire the flag is called "zeroOrder" and the translation happens in
// pkg/barapi.
type Order struct {
	ID          string          `json:"id"`
	Items       []OrderItem     `json:"items"`
	Total       decimal.Decimal `json:"total"`
	IsZeroOrder bool            `json:"isZeroOrder"`
	CreatedAt   string          `json:"createdAt"`
	RegisterID  string          `json:"registerId"`
}

// OrderItem is one line of an order. DrinkID is kept in string form because
// that is how the backend stores it. Price is a snapshot and may be stale
// relative to the catalog.
type OrderItem struct {
	DrinkID   string          `json:"drinkId"`
	DrinkName string          `json:"drinkName,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
