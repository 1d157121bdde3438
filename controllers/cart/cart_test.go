package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beasportai/moberry/cart"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(store *cart.Store, sid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", sid)
		c.Next()
	})
	r.GET("/session/cart", GetCart(store))
	r.DELETE("/session/cart/items/:item_id", RemoveCartItem(store))
	r.PATCH("/session/cart/items/:item_id", AdjustCartItem(store))
	r.PUT("/session/cart/visibility", SetCartVisibility(store))
	r.GET("/session/cart/selector", GetSelector(store))
	r.POST("/session/cart/selector/increment", IncrementSelector(store))
	r.POST("/session/cart/selector/decrement", DecrementSelector(store))
	return r
}

func seed(store *cart.Store, sid string) {
	store.With(sid, func(c *cart.Cart) {
		c.Add(cart.LineItem{ProductID: 1, Name: "Moringa Powder", Price: 100, Weight: "500g"}, 2)
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, cartState) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var state cartState
	if w.Code == http.StatusOK {
		_ = json.Unmarshal(w.Body.Bytes(), &state)
	}
	return w, state
}

func TestGetCartEmpty(t *testing.T) {
	store := cart.NewStore()
	r := testRouter(store, "s1")

	w, state := do(t, r, http.MethodGet, "/session/cart", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, state.Items)
	assert.Equal(t, 0.0, state.TotalPrice)
	assert.Equal(t, 1, state.Selector)
}

func TestRemoveUnknownItemReturnsUnchangedCart(t *testing.T) {
	store := cart.NewStore()
	seed(store, "s1")
	r := testRouter(store, "s1")

	w, state := do(t, r, http.MethodDelete, "/session/cart/items/99-1kg", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 200.0, state.TotalPrice)
	assert.Equal(t, 2, state.TotalQuantity)
}

func TestAdjustEndpoint(t *testing.T) {
	store := cart.NewStore()
	seed(store, "s1")
	r := testRouter(store, "s1")

	w, state := do(t, r, http.MethodPatch, "/session/cart/items/1-500g", `{"direction":"increment"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, state.TotalQuantity)

	w, state = do(t, r, http.MethodPatch, "/session/cart/items/1-500g", `{"direction":"decrement"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, state.TotalQuantity)

	// Bad direction is rejected by binding
	w, _ = do(t, r, http.MethodPatch, "/session/cart/items/1-500g", `{"direction":"reset"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVisibilityGatesScrollLock(t *testing.T) {
	store := cart.NewStore()
	r := testRouter(store, "s1")

	w, state := do(t, r, http.MethodPut, "/session/cart/visibility", `{"visible":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, state.Visible)
	assert.True(t, state.ScrollLocked)

	w, state = do(t, r, http.MethodPut, "/session/cart/visibility", `{"visible":false,"overlay_active":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, state.Visible)
	assert.True(t, state.ScrollLocked)

	w, state = do(t, r, http.MethodPut, "/session/cart/visibility", `{"visible":false,"overlay_active":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, state.ScrollLocked)
}

func TestSelectorEndpoints(t *testing.T) {
	store := cart.NewStore()
	r := testRouter(store, "s1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/session/cart/selector/increment", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"quantity":2}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/session/cart/selector/decrement", nil))
	assert.JSONEq(t, `{"quantity":1}`, w.Body.String())

	// Clamped at 1
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/session/cart/selector/decrement", nil))
	assert.JSONEq(t, `{"quantity":1}`, w.Body.String())
}

func TestMissingSessionIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cart.NewStore()
	r := gin.New()
	r.GET("/session/cart", GetCart(store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
