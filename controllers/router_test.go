package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jooseppp/soveldaja-kassa-front/configs"
	"github.com/jooseppp/soveldaja-kassa-front/pkg/barapi"
	"github.com/jooseppp/soveldaja-kassa-front/routes"
	"github.com/jooseppp/soveldaja-kassa-front/services"
)

type memStore struct {
	mu sync.Mutex
	v  string
}

func (m *memStore) SelectedRegisterID() (string, error) { m.mu.Lock(); defer m.mu.Unlock(); return m.v, nil }
func (m *memStore) SaveSelectedRegister(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.v = id
	return nil
}
func (m *memStore) Clear() error { m.mu.Lock(); defer m.mu.Unlock(); m.v = ""; return nil }

type backend struct {
	mu      sync.Mutex
	created []map[string]any
}

func (b *backend) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	p := r.URL.Path
	switch {
	case p == "/register":
		w.Write([]byte(`[{"id":1,"name":"Peabaar","createdAt":"2024-05-01T10:00:00Z","updatedAt":"2024-05-01T10:00:00Z"}]`))
	case strings.HasPrefix(p, "/drinks/"):
		w.Write([]byte(`[{"id":1,"name":"Beer","price":4.5,"shot":false,"registerId":1},{"id":2,"name":"Vodka","price":1.0,"shot":true,"registerId":1}]`))
	case strings.HasSuffix(p, "/last"):
		w.Write([]byte(`[]`))
	case p == "/orders" && r.Method == http.MethodPost:
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		body["id"] = "o1"
		b.mu.Lock()
		b.created = append(b.created, body)
		b.mu.Unlock()
		json.NewEncoder(w).Encode(body)
	default:
		http.NotFound(w, r)
	}
}

func newRouter(t *testing.T) (*gin.Engine, *backend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &backend{}
	srv := httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(srv.Close)

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	api := barapi.NewClient(srv.URL)
	svc := services.NewSessionService(api, &memStore{}, services.NewCartService())
	edit := services.NewEditService(api)

	r := gin.New()
	routes.RegisterRoutes(r, cfg, svc, edit)
	return r, b
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var rd *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.OK)
	return envelope.Data
}

func TestOperatorFlow(t *testing.T) {
	r, b := newRouter(t)

	// registers are public
	w := do(r, http.MethodGet, "/session/registers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// login to register 1
	w = do(r, http.MethodPost, "/session/login", "", gin.H{"registerId": 1})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := data(t, w)["token"].(string)
	require.NotEmpty(t, token)

	// menu comes from the backend catalog
	w = do(r, http.MethodGet, "/menu", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// build a cart: 2 beers
	w = do(r, http.MethodPost, "/cart/items", token, gin.H{"drinkId": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	cart := data(t, w)
	assert.Equal(t, "9.00", cart["totalPrice"])
	assert.Equal(t, 2.0, cart["totalItems"])

	// checkout submits the cart
	w = do(r, http.MethodPost, "/checkout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	b.mu.Lock()
	require.Len(t, b.created, 1)
	assert.Equal(t, 9.0, b.created[0]["total"])
	b.mu.Unlock()

	// cart is empty afterwards
	w = do(r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, data(t, w)["totalItems"])

	// a second checkout on the empty cart is rejected before any network call
	w = do(r, http.MethodPost, "/checkout", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	b.mu.Lock()
	assert.Len(t, b.created, 1)
	b.mu.Unlock()
}

func TestGuardedRoutesRejectMissingToken(t *testing.T) {
	r, _ := newRouter(t)
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/cart"},
		{http.MethodPost, "/checkout"},
		{http.MethodGet, "/orders"},
		{http.MethodPost, "/session/logout"},
	} {
		w := do(r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestZeroCheckoutEndpoint(t *testing.T) {
	r, b := newRouter(t)

	w := do(r, http.MethodPost, "/session/login", "", gin.H{"registerId": 1})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := data(t, w)["token"].(string)

	do(r, http.MethodPost, "/cart/items", token, gin.H{"drinkId": 1, "quantity": 2})
	do(r, http.MethodPost, "/cart/items", token, gin.H{"drinkId": 2, "quantity": 3})

	w = do(r, http.MethodPost, "/checkout/zero", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	b.mu.Lock()
	defer b.mu.Unlock()
	require.Len(t, b.created, 1)
	assert.Equal(t, 0.0, b.created[0]["total"])
	assert.Equal(t, true, b.created[0]["zeroOrder"])
}
