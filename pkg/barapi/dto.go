package barapi

import (
	"github.com/shopspring/decimal"

	"github.com/jooseppp/soveldaja-kassa-front/entity"
)

// Wire representations of orders. These deliberately differ from
// entity.Order: money travels as plain JSON numbers and the complimentary
// flag is called "zeroOrder" on the wire but IsZeroOrder in memory. The two
// mapping functions below are the only place the translation happens.

type orderDTO struct {
	ID         string         `json:"id,omitempty"`
	Items      []orderItemDTO `json:"items"`
	Total      float64        `json:"total"`
	CreatedAt  string         `json:"createdAt,omitempty"`
	RegisterID string         `json:"registerId,omitempty"`
	ZeroOrder  bool           `json:"zeroOrder"`
}

type orderItemDTO struct {
	DrinkID   string  `json:"drinkId"`
	DrinkName string  `json:"drinkName,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price,omitempty"`
}

func toWire(o entity.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			DrinkID:   it.DrinkID,
			DrinkName: it.DrinkName,
			Quantity:  it.Quantity,
			Price:     it.Price.InexactFloat64(),
		})
	}
	return orderDTO{
		ID:         o.ID,
		Items:      items,
		Total:      o.Total.InexactFloat64(),
		CreatedAt:  o.CreatedAt,
		RegisterID: o.RegisterID,
		ZeroOrder:  o.IsZeroOrder,
	}
}

func fromWire(d orderDTO) entity.Order {
	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, entity.OrderItem{
			DrinkID:   it.DrinkID,
			DrinkName: it.DrinkName,
			Quantity:  it.Quantity,
			Price:     decimal.NewFromFloat(it.Price),
		})
	}
	return entity.Order{
		ID:          d.ID,
		Items:       items,
		Total:       decimal.NewFromFloat(d.Total),
		CreatedAt:   d.CreatedAt,
		RegisterID:  d.RegisterID,
		IsZeroOrder: d.ZeroOrder,
	}
}
