package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jooseppp/soveldaja-kassa-front/entity"
)

// CartService is the in-memory ledger of the operator's unsubmitted
// selection. Lines keep insertion order and are unique per drink id. Totals
// are exact decimals; rounding happens only where a value is displayed.
type CartService struct {
	mu    sync.Mutex
	lines []entity.CartLine
}

func NewCartService() *CartService { return &CartService{} }

// Add increments the existing line for the drink or appends a new one.
// A non-positive quantity counts as 1.
func (s *CartService) Add(drink entity.Drink, qty int) {
	if qty <= 0 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Drink.ID == drink.ID {
			s.lines[i].Quantity += qty
			return
		}
	}
	s.lines = append(s.lines, entity.CartLine{Drink: drink, Quantity: qty})
}

// Remove drops the line for the drink; no-op when absent.
func (s *CartService) Remove(drinkID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(drinkID)
}

func (s *CartService) removeLocked(drinkID uint) {
	for i := range s.lines {
		if s.lines[i].Drink.ID == drinkID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity exactly. Zero or negative removes
// the line.
func (s *CartService) SetQuantity(drinkID uint, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty <= 0 {
		s.removeLocked(drinkID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Drink.ID == drinkID {
			s.lines[i].Quantity = qty
			return
		}
	}
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a snapshot copy; callers never alias internal state.
func (s *CartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// TotalPrice is the exact sum of unit price times quantity across lines.
func (s *CartService) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Drink.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// TotalItems is the sum of quantities across lines.
func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}
