package entity

// CartLine pairs a drink with a positive quantity. A line whose quantity
// reaches zero is removed from the cart, never stored.
type CartLine struct {
	Drink    Drink `json:"drink"`
	Quantity int   `json:"quantity"`
}
