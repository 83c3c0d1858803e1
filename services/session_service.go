package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jooseppp/soveldaja-kassa-front/entity"
	"github.com/jooseppp/soveldaja-kassa-front/pkg/barapi"
)

var (
	ErrNoRegister       = errors.New("no register selected")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrRegisterNotFound = errors.New("register not found")
	ErrUnknownDrink     = errors.New("drink not on this register's menu")
	ErrOrderNotFound    = errors.New("order not found")
)

// SessionStore persists the terminal's selected register across restarts.
// repository.SessionRepository is the real implementation.
type SessionStore interface {
	SelectedRegisterID() (string, error)
	SaveSelectedRegister(id string) error
	Clear() error
}

// SessionService drives the terminal session: register selection and
// restoration, the menu and order history for the selected register, and the
// checkout / edit / delete flows against the bar backend. It moves between
// two states, no-register-selected and register-selected; logout always
// returns it to the first.
type SessionService struct {
	API   *barapi.Client
	Store SessionStore
	Cart  *CartService
	gate  *flightGate

	mu       sync.Mutex
	register *entity.Register
	drinks   []entity.Drink
	orders   []entity.Order
}

func NewSessionService(api *barapi.Client, store SessionStore, cart *CartService) *SessionService {
	return &SessionService{API: api, Store: store, Cart: cart, gate: newFlightGate()}
}

// Registers lists the known registers for the login screen. A fetch failure
// is logged and yields an empty list; the caller cannot tell "failed" from
// "genuinely none", which matches how the terminal treats every list load.
func (s *SessionService) Registers(ctx context.Context) ([]entity.Register, error) {
	if err := s.gate.begin(OpRegisters); err != nil {
		return nil, err
	}
	defer s.gate.end(OpRegisters)
	regs, err := s.API.Registers(ctx)
	if err != nil {
		log.Printf("load registers: %v", err)
		return []entity.Register{}, nil
	}
	return regs, nil
}

// Restore re-selects the register persisted from a previous run, but only if
// that id still names a known register. Any failure leaves the terminal in
// the no-register state; the operator just logs in again.
func (s *SessionService) Restore(ctx context.Context) {
	id, err := s.Store.SelectedRegisterID()
	if err != nil {
		log.Printf("restore session: %v", err)
		return
	}
	if id == "" {
		return
	}
	regs, err := s.API.Registers(ctx)
	if err != nil {
		log.Printf("restore session: %v", err)
		return
	}
	for _, r := range regs {
		if strconv.FormatUint(uint64(r.ID), 10) == id {
			s.enter(ctx, r)
			return
		}
	}
	log.Printf("restore session: saved register %s no longer exists", id)
}

// SelectRegister moves the terminal into the register-selected state,
// persists the choice, and loads the register's menu and order history.
func (s *SessionService) SelectRegister(ctx context.Context, id uint) (*entity.Register, error) {
	regs, err := s.API.Registers(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range regs {
		if r.ID == id {
			if err := s.Store.SaveSelectedRegister(strconv.FormatUint(uint64(id), 10)); err != nil {
				return nil, err
			}
			s.enter(ctx, r)
			reg := r
			return &reg, nil
		}
	}
	return nil, ErrRegisterNotFound
}

// enter loads drinks and history for the register. The two fetches are
// independent: either may fail (logged, empty list) without blocking the
// other.
func (s *SessionService) enter(ctx context.Context, reg entity.Register) {
	s.mu.Lock()
	r := reg
	s.register = &r
	s.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.loadDrinks(ctx, reg.ID)
	}()
	go func() {
		defer wg.Done()
		s.loadOrders(ctx, reg.ID)
	}()
	wg.Wait()
}

func (s *SessionService) loadDrinks(ctx context.Context, registerID uint) {
	if err := s.gate.begin(OpDrinks); err != nil {
		return
	}
	defer s.gate.end(OpDrinks)
	drinks, err := s.API.DrinksByRegister(ctx, registerID)
	if err != nil {
		log.Printf("load drinks: %v", err)
		drinks = []entity.Drink{}
	}
	s.mu.Lock()
	s.drinks = drinks
	s.mu.Unlock()
}

func (s *SessionService) loadOrders(ctx context.Context, registerID uint) {
	if err := s.gate.begin(OpOrders); err != nil {
		return
	}
	defer s.gate.end(OpOrders)
	orders, err := s.API.LastOrderByRegister(ctx, registerID)
	if err != nil {
		log.Printf("load orders: %v", err)
		orders = []entity.Order{}
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
}

// Logout clears everything tied to the session: persisted register id, cart,
// menu, and history.
func (s *SessionService) Logout() {
	if err := s.Store.Clear(); err != nil {
		log.Printf("clear session state: %v", err)
	}
	s.Cart.Clear()
	s.mu.Lock()
	s.register = nil
	s.drinks = nil
	s.orders = nil
	s.mu.Unlock()
}

func (s *SessionService) CurrentRegister() *entity.Register {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.register == nil {
		return nil
	}
	r := *s.register
	return &r
}

func (s *SessionService) Drinks() []entity.Drink {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Drink, len(s.drinks))
	copy(out, s.drinks)
	return out
}

func (s *SessionService) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

// cloneOrder copies an order including its items, so callers can edit what
// they get back without touching history.
func cloneOrder(o entity.Order) entity.Order {
	c := o
	c.Items = make([]entity.OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	return c
}

func (s *SessionService) Busy() map[OpClass]bool { return s.gate.snapshot() }

// AddToCart resolves the drink against the selected register's menu before
// handing it to the ledger, so the cart can only ever hold drinks the
// register actually sells.
func (s *SessionService) AddToCart(drinkID uint, qty int) error {
	if s.CurrentRegister() == nil {
		return ErrNoRegister
	}
	s.mu.Lock()
	var drink *entity.Drink
	for i := range s.drinks {
		if s.drinks[i].ID == drinkID {
			d := s.drinks[i]
			drink = &d
			break
		}
	}
	s.mu.Unlock()
	if drink == nil {
		return ErrUnknownDrink
	}
	s.Cart.Add(*drink, qty)
	return nil
}

// Checkout submits the cart as a priced order. On success the cart is
// cleared and history is refreshed strictly afterwards, so the operator
// never sees history predating their own order. On failure the cart is left
// exactly as it was.
func (s *SessionService) Checkout(ctx context.Context) (*entity.Order, error) {
	return s.checkout(ctx, false)
}

// ZeroCheckout submits the same cart as a complimentary order: identical
// items, but total forced to 0 and the zero-order flag set on the wire.
func (s *SessionService) ZeroCheckout(ctx context.Context) (*entity.Order, error) {
	return s.checkout(ctx, true)
}

func (s *SessionService) checkout(ctx context.Context, zero bool) (*entity.Order, error) {
	reg := s.CurrentRegister()
	if reg == nil {
		return nil, ErrNoRegister
	}
	if s.Cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if err := s.gate.begin(OpCheckout); err != nil {
		return nil, err
	}
	defer s.gate.end(OpCheckout)

	lines := s.Cart.Lines()
	items := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		// Only id and quantity go over the wire; the backend owns prices
		// and names.
		items = append(items, entity.OrderItem{
			DrinkID:  strconv.FormatUint(uint64(l.Drink.ID), 10),
			Quantity: l.Quantity,
		})
	}
	order := entity.Order{
		Items:      items,
		Total:      s.Cart.TotalPrice(),
		RegisterID: strconv.FormatUint(uint64(reg.ID), 10),
	}
	if zero {
		order.Total = decimal.Zero
		order.IsZeroOrder = true
	}

	created, err := s.API.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	s.Cart.Clear()
	s.loadOrders(ctx, reg.ID)
	return created, nil
}

// RefreshHistory reloads the register's recent orders on demand.
func (s *SessionService) RefreshHistory(ctx context.Context) error {
	reg := s.CurrentRegister()
	if reg == nil {
		return ErrNoRegister
	}
	s.loadOrders(ctx, reg.ID)
	return nil
}

// FindOrder returns the order with the given id from local history.
func (s *SessionService) FindOrder(id string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := cloneOrder(s.orders[i])
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateOrder persists an edited order. The backend's returned
// representation, not the locally edited one, replaces the history entry —
// and only after a confirmed success.
func (s *SessionService) UpdateOrder(ctx context.Context, order entity.Order) (*entity.Order, error) {
	reg := s.CurrentRegister()
	if reg == nil {
		return nil, ErrNoRegister
	}
	if err := s.gate.begin(OpOrders); err != nil {
		return nil, err
	}
	defer s.gate.end(OpOrders)

	order.RegisterID = strconv.FormatUint(uint64(reg.ID), 10)
	updated, err := s.API.UpdateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == updated.ID {
			s.orders[i] = cloneOrder(*updated)
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteOrder removes the order from the backend and then, on success only,
// from local history; the other entries keep their relative order.
func (s *SessionService) DeleteOrder(ctx context.Context, id string) error {
	if s.CurrentRegister() == nil {
		return ErrNoRegister
	}
	if err := s.gate.begin(OpOrders); err != nil {
		return err
	}
	defer s.gate.end(OpOrders)

	if err := s.API.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	s.mu.Unlock()
	return nil
}
