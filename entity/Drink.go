package entity

import "github.com/shopspring/decimal"

// Drink is a sellable catalog item. The authoritative copy lives in the
// backend catalog; prices may change between fetches.
type Drink struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Shot       bool            `json:"shot"`
	RegisterID uint            `json:"registerId"`
}
