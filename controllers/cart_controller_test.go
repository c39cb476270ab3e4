package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"esencia-shop/middleware"
	"esencia-shop/models"
	"esencia-shop/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPerfumeFinder struct {
	perfumes map[string]models.Perfume
}

func (s *stubPerfumeFinder) GetPerfumeByID(ctx context.Context, id string) (*models.Perfume, error) {
	p, ok := s.perfumes[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return &p, nil
}

func newCartTestRouter(t *testing.T) (*gin.Engine, *repositories.MemoryCartRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repositories.NewMemoryCartRepository()
	finder := &stubPerfumeFinder{perfumes: map[string]models.Perfume{
		"1": {ID: "1", Name: "Oud Al Layl", Brand: "Lattafa", Category: "Árabe", Price: 45000, InStock: true},
		"4": {ID: "4", Name: "Amber Oud", Brand: "Al Haramain", Category: "Árabe", Price: 38000, InStock: true},
	}}

	ctrl := NewCartController(repo, finder)

	router := gin.New()
	cart := router.Group("/cart")
	cart.Use(middleware.CartTokenMiddleware())
	{
		cart.GET("", ctrl.GetCart)
		cart.POST("/items", ctrl.AddItem)
		cart.PATCH("/items/:id", ctrl.SetQuantity)
		cart.DELETE("/items/:id", ctrl.RemoveItem)
		cart.DELETE("", ctrl.Clear)
	}
	return router, repo
}

func doCartRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Cart-Token", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetCartMintsToken(t *testing.T) {
	router, _ := newCartTestRouter(t)

	w := doCartRequest(t, router, http.MethodGet, "/cart", "", nil)

	assert.Equal(t, 200, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Cart-Token"))

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
	assert.EqualValues(t, 0, data["total"])
}

func TestAddItemReturnsNotice(t *testing.T) {
	router, _ := newCartTestRouter(t)

	w := doCartRequest(t, router, http.MethodPost, "/cart/items", "tok",
		gin.H{"perfume_id": "1", "quantity": 2})

	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)

	notice := body["notice"].(map[string]interface{})
	assert.Equal(t, "success", notice["level"])
	assert.Equal(t, "Agregado al carrito", notice["title"])

	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total_items"])
	assert.EqualValues(t, 90000, data["total"])
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	router, _ := newCartTestRouter(t)

	w := doCartRequest(t, router, http.MethodPost, "/cart/items", "tok",
		gin.H{"perfume_id": "1"})

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total_items"])
}

func TestAddItemUnknownPerfume(t *testing.T) {
	router, _ := newCartTestRouter(t)

	w := doCartRequest(t, router, http.MethodPost, "/cart/items", "tok",
		gin.H{"perfume_id": "missing"})

	assert.Equal(t, 404, w.Code)
}

func TestAddItemMergesAcrossRequests(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", "tok", gin.H{"perfume_id": "1"})
	w := doCartRequest(t, router, http.MethodPost, "/cart/items", "tok", gin.H{"perfume_id": "1", "quantity": 2})

	body := decodeBody(t, w)
	notice := body["notice"].(map[string]interface{})
	assert.Equal(t, "Cantidad actualizada", notice["title"])
	assert.Equal(t, "Oud Al Layl (3)", notice["description"])

	items := body["data"].(map[string]interface{})["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestCartsAreIsolatedByToken(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", "alice", gin.H{"perfume_id": "1"})
	w := doCartRequest(t, router, http.MethodGet, "/cart", "bob", nil)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 0, data["total_items"])
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", "tok", gin.H{"perfume_id": "1"})
	w := doCartRequest(t, router, http.MethodPatch, "/cart/items/1", "tok", gin.H{"quantity": 0})

	body := decodeBody(t, w)
	notice := body["notice"].(map[string]interface{})
	assert.Equal(t, "Eliminado del carrito", notice["title"])

	data := body["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
}

func TestSetQuantityPositiveHasNoNotice(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", "tok", gin.H{"perfume_id": "1"})
	w := doCartRequest(t, router, http.MethodPatch, "/cart/items/1", "tok", gin.H{"quantity": 5})

	body := decodeBody(t, w)
	assert.NotContains(t, body, "notice")

	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 5, data["total_items"])
}

func TestSetQuantityRequiresBody(t *testing.T) {
	router, _ := newCartTestRouter(t)

	w := doCartRequest(t, router, http.MethodPatch, "/cart/items/1", "tok", gin.H{})
	assert.Equal(t, 400, w.Code)
}

func TestRemoveAbsentItemIsQuietSuccess(t *testing.T) {
	router, _ := newCartTestRouter(t)

	w := doCartRequest(t, router, http.MethodDelete, "/cart/items/ghost", "tok", nil)

	assert.Equal(t, 200, w.Code)
	assert.NotContains(t, decodeBody(t, w), "notice")
}

func TestClearCart(t *testing.T) {
	router, repo := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", "tok", gin.H{"perfume_id": "1"})
	doCartRequest(t, router, http.MethodPost, "/cart/items", "tok", gin.H{"perfume_id": "4"})

	w := doCartRequest(t, router, http.MethodDelete, "/cart", "tok", nil)

	body := decodeBody(t, w)
	notice := body["notice"].(map[string]interface{})
	assert.Equal(t, "Carrito vaciado", notice["title"])

	lines, err := repo.Load(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCorruptSlotDegradesToEmptyCart(t *testing.T) {
	router, repo := newCartTestRouter(t)
	repo.Put("tok", []byte("garbage"))

	w := doCartRequest(t, router, http.MethodGet, "/cart", "tok", nil)

	assert.Equal(t, 200, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
}
