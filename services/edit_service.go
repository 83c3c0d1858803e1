package services

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jooseppp/soveldaja-kassa-front/entity"
	"github.com/jooseppp/soveldaja-kassa-front/pkg/barapi"
)

// EditService reconciles a persisted order against the current catalog while
// the operator edits it: line prices are refreshed from the backend, quantity
// edits can drop lines, and the live total honors the zero-order override.
type EditService struct {
	API *barapi.Client
}

func NewEditService(api *barapi.Client) *EditService { return &EditService{API: api} }

// RefreshPrices looks up the current catalog price for every line and
// returns a new list. Lookups run concurrently; a line whose drink id does
// not parse, or whose lookup fails, keeps its stored price. No single line
// can abort the refresh.
func (s *EditService) RefreshPrices(ctx context.Context, items []entity.OrderItem) []entity.OrderItem {
	out := make([]entity.OrderItem, len(items))
	copy(out, items)

	var wg sync.WaitGroup
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := strconv.ParseUint(out[i].DrinkID, 10, 64)
			if err != nil {
				log.Printf("refresh prices: invalid drink id %q", out[i].DrinkID)
				return
			}
			drink, err := s.API.DrinkByID(ctx, uint(id))
			if err != nil {
				log.Printf("refresh prices: drink %s: %v", out[i].DrinkID, err)
				return
			}
			out[i].Price = drink.Price
		}(i)
	}
	wg.Wait()
	return out
}

// UpdateLineQuantity returns a new line list with the quantity at index
// replaced, or with the line removed when the new quantity is zero or less.
// An out-of-range index is a programming error and panics.
func (s *EditService) UpdateLineQuantity(items []entity.OrderItem, index, qty int) []entity.OrderItem {
	if index < 0 || index >= len(items) {
		panic("edit: line index out of range")
	}
	out := make([]entity.OrderItem, 0, len(items))
	out = append(out, items...)
	if qty <= 0 {
		return append(out[:index], out[index+1:]...)
	}
	out[index].Quantity = qty
	return out
}

// ComputeTotal is the displayed total for the edited lines. A complimentary
// order stays at 0 through any edit; otherwise the total is recomputed from
// the current line quantities and prices.
func (s *EditService) ComputeTotal(items []entity.OrderItem, isZeroOrder bool) decimal.Decimal {
	if isZeroOrder {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// BuildUpdatedOrder is the payload sent back after an edit: the original
// order with its items replaced. The stored total is left untouched; the
// backend recomputes it authoritatively on write.
func (s *EditService) BuildUpdatedOrder(original entity.Order, edited []entity.OrderItem) entity.Order {
	updated := original
	updated.Items = make([]entity.OrderItem, len(edited))
	copy(updated.Items, edited)
	return updated
}
