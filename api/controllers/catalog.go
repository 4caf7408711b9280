package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/cantina-pos-backend/api/responses"
	"github.com/angelmondragon/cantina-pos-backend/api/validators"
	"github.com/angelmondragon/cantina-pos-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/angelmondragon/cantina-pos-backend/pkg/logger"
)

// CatalogService is the catalog read surface the menu pages consume.
type CatalogService interface {
	ListCategory(ctx context.Context, category string) ([]catalog.ProductDTO, error)
	ListLiquor(ctx context.Context, name string) ([]catalog.ProductDTO, error)
}

// CatalogCategoryProducts lists the products of one menu category.
func CatalogCategoryProducts(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := validators.SanitizeString(chi.URLParam(r, "category"), 64)
		products, err := svc.ListCategory(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// CatalogLiquorProducts lists the bottles of one liquor family.
func CatalogLiquorProducts(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		name := validators.SanitizeString(chi.URLParam(r, "name"), 64)
		products, err := svc.ListLiquor(r.Context(), name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}
