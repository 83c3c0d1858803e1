// Package barapi is the REST client for the drink-bar backend. It is the only
// package that knows the wire shapes; everything it hands out is in entity
// form. Failed requests carry a static, endpoint-specific message and never
// surface the backend's own error body.
package barapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jooseppp/soveldaja-kassa-front/entity"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

func (c *Client) Registers(ctx context.Context) ([]entity.Register, error) {
	var out []entity.Register
	if err := c.do(ctx, http.MethodGet, "/register", nil, &out, "failed to fetch registers"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DrinksByRegister(ctx context.Context, registerID uint) ([]entity.Drink, error) {
	var out []entity.Drink
	path := fmt.Sprintf("/drinks/%d", registerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "failed to fetch drinks"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DrinkByID(ctx context.Context, id uint) (*entity.Drink, error) {
	var out entity.Drink
	path := fmt.Sprintf("/drinks/drink/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "failed to fetch drink"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, o entity.Order) (*entity.Order, error) {
	var out orderDTO
	if err := c.do(ctx, http.MethodPost, "/orders", toWire(o), &out, "failed to create order"); err != nil {
		return nil, err
	}
	created := fromWire(out)
	return &created, nil
}

// Orders lists orders with optional filters; empty strings mean no filter.
func (c *Client) Orders(ctx context.Context, status, customerID, registerID string) ([]entity.Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if customerID != "" {
		q.Set("customerId", customerID)
	}
	if registerID != "" {
		q.Set("registerId", registerID)
	}
	path := "/orders/getAll"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var out []orderDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "failed to fetch orders"); err != nil {
		return nil, err
	}
	orders := make([]entity.Order, 0, len(out))
	for _, d := range out {
		orders = append(orders, fromWire(d))
	}
	return orders, nil
}

// LastOrderByRegister fetches the most recent order(s) for a register. The
// backend answers with either a single object or an array depending on its
// mood; callers always get a list, possibly empty.
func (c *Client) LastOrderByRegister(ctx context.Context, registerID uint) ([]entity.Order, error) {
	const msg = "failed to fetch last order"
	var raw json.RawMessage
	path := fmt.Sprintf("/orders/register/%d/last", registerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &raw, msg); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []entity.Order{}, nil
	}
	if trimmed[0] == '[' {
		var dtos []orderDTO
		if err := json.Unmarshal(trimmed, &dtos); err != nil {
			return nil, fmt.Errorf("%s: %w", msg, err)
		}
		orders := make([]entity.Order, 0, len(dtos))
		for _, d := range dtos {
			orders = append(orders, fromWire(d))
		}
		return orders, nil
	}
	var d orderDTO
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	return []entity.Order{fromWire(d)}, nil
}

func (c *Client) OrderByID(ctx context.Context, id, registerID string) (*entity.Order, error) {
	path := "/orders/" + url.PathEscape(id)
	if registerID != "" {
		path += "?registerId=" + url.QueryEscape(registerID)
	}
	var out orderDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "failed to fetch order"); err != nil {
		return nil, err
	}
	o := fromWire(out)
	return &o, nil
}

// UpdateOrder sends the full edited order for persistence. The backend
// recomputes the total; its returned representation is the new truth.
func (c *Client) UpdateOrder(ctx context.Context, o entity.Order) (*entity.Order, error) {
	if o.ID == "" {
		return nil, errors.New("failed to update order")
	}
	path := "/orders/edit/" + url.PathEscape(o.ID)
	var out orderDTO
	if err := c.do(ctx, http.MethodPut, path, toWire(o), &out, "failed to update order"); err != nil {
		return nil, err
	}
	updated := fromWire(out)
	return &updated, nil
}

// DeleteOrder removes an order. The backend's response body may be empty;
// that still counts as success.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	path := "/orders/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "failed to delete order")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, errMsg string) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", errMsg, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		io.Copy(io.Discard, res.Body)
		return errors.New(errMsg)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	return nil
}
