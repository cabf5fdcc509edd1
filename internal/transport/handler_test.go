package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalogo-plus/internal/middleware"
	"catalogo-plus/internal/repository"
	"catalogo-plus/internal/service"
	"catalogo-plus/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()

	repo, err := repository.NewProductRepository(repository.SeedProducts())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.ValidationMiddleware(logger))
	NewCatalogHandler(service.NewCatalogService(repo, logger), logger).RegisterRoutes(r)
	NewShortlistHandler(
		service.NewShortlistService(repo, storage.NewMemoryStore(), logger),
		logger,
	).RegisterRoutes(r, middleware.ClientIDMiddleware(logger))
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, clientID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if clientID != "" {
		req.Header.Set(middleware.ClientIDHeader, clientID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

type listResponse struct {
	Items []struct {
		ID       int    `json:"id"`
		Price    string `json:"price"`
		Category string `json:"category"`
	} `json:"items"`
	TotalCount int `json:"total_count"`
	PageWindow struct {
		CurrentPage int `json:"current_page"`
		TotalPages  int `json:"total_pages"`
	} `json:"page_window"`
	Collection struct {
		Heading string `json:"heading"`
	} `json:"collection"`
	Summary string `json:"summary"`
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/products?type=category&value=boots&price_max=150", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, resp.TotalCount, len(resp.Items))
	for _, item := range resp.Items {
		assert.Equal(t, "boots", item.Category)
	}
	assert.Equal(t, "Boots", resp.Collection.Heading)
	assert.NotEmpty(t, resp.Summary)
}

func TestListProducts_HugePriceBoundIsIgnored(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/products?price_max=1e10000000", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20, resp.TotalCount)
}

func TestListProducts_SecondPage(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/products?page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.PageWindow.CurrentPage)
	assert.Equal(t, resp.TotalCount-12, len(resp.Items))
}

// Feature: catalog-api, Property: Any query string yields a successful listing
func TestProperty_ListProductsNeverFails(t *testing.T) {
	router := newTestRouter(t)
	properties := gopter.NewProperties(nil)

	properties.Property("arbitrary parameter values return 200", prop.ForAll(
		func(sortMode, page, priceMin string) bool {
			q := "/api/products?sort=" + sortMode + "&page=" + page + "&price_min=" + priceMin
			w := doRequest(t, router, "GET", q, "", nil)
			return w.Code == http.StatusOK
		},
		gen.AlphaString(),
		gen.NumString(),
		gen.Identifier(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/products/5", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"$219.99"`)

	w = doRequest(t, router, "GET", "/api/products/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, "GET", "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHome(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/home", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Grid       []json.RawMessage `json:"grid"`
		TopSellers []json.RawMessage `json:"top_sellers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Grid, 4)
	assert.NotEmpty(t, resp.TopSellers)
}

func TestFavoritesFlow(t *testing.T) {
	router := newTestRouter(t)
	clientID := uuid.NewString()

	w := doRequest(t, router, "GET", "/api/favorites", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, "POST", "/api/favorites", clientID, map[string]int{"product_id": 3})
	require.Equal(t, http.StatusOK, w.Code)
	var toggled ToggleFavoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.True(t, toggled.Added)
	assert.Equal(t, 1, toggled.Count)

	w = doRequest(t, router, "POST", "/api/favorites", clientID, map[string]int{"product_id": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_errors")

	w = doRequest(t, router, "POST", "/api/favorites", clientID, map[string]int{"product_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, "DELETE", "/api/favorites/3", clientID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, "GET", "/api/favorites", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var favs FavoritesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favs))
	assert.Zero(t, favs.Count)
}

func TestComparisonFlow(t *testing.T) {
	router := newTestRouter(t)
	clientID := uuid.NewString()

	w := doRequest(t, router, "POST", "/api/compare", clientID, map[string]int{"product_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "GET", "/api/compare/table", clientID, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, router, "POST", "/api/compare", clientID, map[string]int{"product_id": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	for _, id := range []int{2, 3, 4} {
		w = doRequest(t, router, "POST", "/api/compare", clientID, map[string]int{"product_id": id})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = doRequest(t, router, "POST", "/api/compare", clientID, map[string]int{"product_id": 5})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "comparison is full")

	w = doRequest(t, router, "GET", "/api/compare/table", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var table service.CompareTable
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))
	assert.Len(t, table.Products, 4)
	assert.Len(t, table.Rows, 4)

	w = doRequest(t, router, "DELETE", "/api/compare/2", clientID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, "GET", "/api/compare", clientID, nil)
	var cmp ComparisonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cmp))
	assert.Equal(t, 3, cmp.Count)
	assert.Equal(t, 4, cmp.Max)
}

func TestShortlistsManagement(t *testing.T) {
	router := newTestRouter(t)
	clientID := uuid.NewString()

	doRequest(t, router, "POST", "/api/favorites", clientID, map[string]int{"product_id": 6})
	doRequest(t, router, "POST", "/api/compare", clientID, map[string]int{"product_id": 7})

	w := doRequest(t, router, "GET", "/api/shortlists", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap service.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.Favorites, 1)
	assert.Len(t, snap.Compare, 1)

	w = doRequest(t, router, "DELETE", "/api/shortlists/wishlist", clientID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, "DELETE", "/api/shortlists/compare", clientID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, "DELETE", "/api/shortlists", clientID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, "GET", "/api/shortlists", clientID, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Empty(t, snap.Favorites)
	assert.Empty(t, snap.Compare)
}
