package services

import (
	"errors"
	"sync"
)

// ErrBusy is returned when an operation of the same class is already in
// flight. There is no cancellation; the caller simply tries again later.
var ErrBusy = errors.New("operation already in flight")

// OpClass groups operations that must not overlap with themselves. The
// classes mirror the terminal's operator-facing surfaces: one per list being
// loaded plus checkout.
type OpClass string

const (
	OpRegisters OpClass = "registers"
	OpDrinks    OpClass = "drinks"
	OpOrders    OpClass = "orders"
	OpCheckout  OpClass = "checkout"
)

// flightGate is a tiny per-class state machine: Idle -> InFlight -> Idle.
// Overlapping begin() on the same class is a rejected transition, not a race.
type flightGate struct {
	mu       sync.Mutex
	inFlight map[OpClass]bool
}

func newFlightGate() *flightGate {
	return &flightGate{inFlight: make(map[OpClass]bool)}
}

func (g *flightGate) begin(op OpClass) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[op] {
		return ErrBusy
	}
	g.inFlight[op] = true
	return nil
}

func (g *flightGate) end(op OpClass) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inFlight[op] = false
}

func (g *flightGate) snapshot() map[OpClass]bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[OpClass]bool, len(g.inFlight))
	for k, v := range g.inFlight {
		out[k] = v
	}
	return out
}
