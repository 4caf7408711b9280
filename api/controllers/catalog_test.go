package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/cantina-pos-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/angelmondragon/cantina-pos-backend/pkg/types"
	"github.com/google/uuid"
)

type stubCatalogService struct {
	products     []catalog.ProductDTO
	err          error
	lastCategory string
	lastLiquor   string
}

func (s *stubCatalogService) ListCategory(_ context.Context, category string) ([]catalog.ProductDTO, error) {
	s.lastCategory = category
	return s.products, s.err
}

func (s *stubCatalogService) ListLiquor(_ context.Context, name string) ([]catalog.ProductDTO, error) {
	s.lastLiquor = name
	return s.products, s.err
}

func catalogRouter(svc CatalogService) http.Handler {
	r := chi.NewRouter()
	r.Get("/catalog/categories/{category}/products", CatalogCategoryProducts(svc, testLogger()))
	r.Get("/catalog/liquors/{name}", CatalogLiquorProducts(svc, testLogger()))
	return r
}

func TestCatalogCategoryProducts(t *testing.T) {
	svc := &stubCatalogService{products: []catalog.ProductDTO{{ID: uuid.New(), Name: "Indio", Category: "cervezas"}}}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/catalog/categories/cervezas/products", nil)

	catalogRouter(svc).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.lastCategory != "cervezas" {
		t.Fatalf("expected category param, got %q", svc.lastCategory)
	}

	var body types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	rows, ok := body.Data.([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("unexpected payload %v", body.Data)
	}
}

func TestCatalogLiquorProductsPassesErrors(t *testing.T) {
	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeDependency, "db down")}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/catalog/liquors/TEQUILA", nil)

	catalogRouter(svc).ServeHTTP(w, r)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if svc.lastLiquor != "TEQUILA" {
		t.Fatalf("expected liquor param, got %q", svc.lastLiquor)
	}
}
