package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/cantina-pos-backend/api/responses"
	"github.com/angelmondragon/cantina-pos-backend/internal/order"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/angelmondragon/cantina-pos-backend/pkg/logger"
)

// LedgerService is the completed-order surface the admin pages consume.
type LedgerService interface {
	ListOrders(ctx context.Context) ([]order.PersistedOrder, error)
	DeleteOrder(ctx context.Context, id int64) error
	ListHistory(ctx context.Context) ([]order.PersistedOrder, error)
	DeleteFromHistory(ctx context.Context, id int64) error
	ClearHistory(ctx context.Context) error
}

func orderIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id")
	}
	return id, nil
}

// OrdersList returns the active order ledger.
func OrdersList(svc LedgerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.ListOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

// OrderDelete soft-deletes an order into the history.
func OrderDelete(svc LedgerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteOrder(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// OrdersHistoryList returns the soft-deleted order ledger.
func OrdersHistoryList(svc LedgerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := svc.ListHistory(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, history)
	}
}

// OrdersHistoryDelete permanently removes one order from the history.
func OrdersHistoryDelete(svc LedgerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteFromHistory(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// OrdersHistoryClear wipes the order history.
func OrdersHistoryClear(svc LedgerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearHistory(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
