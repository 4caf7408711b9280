package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/cantina-pos-backend/api/responses"
	"github.com/angelmondragon/cantina-pos-backend/api/validators"
	"github.com/angelmondragon/cantina-pos-backend/internal/order"
	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/angelmondragon/cantina-pos-backend/pkg/logger"
)

// SessionService drives one waiter's order building: the selection flow,
// the cart, and order completion.
type SessionService interface {
	CreateSession(ctx context.Context) uuid.UUID
	DeleteSession(id uuid.UUID)
	StartSelection(ctx context.Context, sessionID uuid.UUID, input order.SelectionInput) (*order.SelectionView, error)
	Increment(ctx context.Context, sessionID uuid.UUID, option string) (*order.SelectionView, error)
	Decrement(ctx context.Context, sessionID uuid.UUID, option string) (*order.SelectionView, error)
	Choose(ctx context.Context, sessionID uuid.UUID, option string) (*order.SelectionView, error)
	SetCookingTerm(ctx context.Context, sessionID uuid.UUID, term enums.CookingTerm) (*order.SelectionView, error)
	CancelSelection(ctx context.Context, sessionID uuid.UUID) error
	Confirm(ctx context.Context, sessionID uuid.UUID, input order.ConfirmInput) (*order.LineItem, error)
	Cart(ctx context.Context, sessionID uuid.UUID) (*order.CartView, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string) error
	ClearCart(ctx context.Context, sessionID uuid.UUID) (int, error)
	Complete(ctx context.Context, sessionID uuid.UUID) (*order.PersistedOrder, error)
}

func sessionIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid session id")
	}
	return id, nil
}

// SessionCreate opens a new order session.
func SessionCreate(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := svc.CreateSession(r.Context())
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"session_id": id.String()})
	}
}

// SessionDelete discards a session and everything in it.
func SessionDelete(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		svc.DeleteSession(id)
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type selectionRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	ProductType string  `json:"product_type" validate:"required"`
	Category    string  `json:"category"`
	PriceTier   string  `json:"price_tier"`
}

func (p selectionRequest) toInput() (order.SelectionInput, error) {
	productType, err := enums.ParseProductType(p.ProductType)
	if err != nil {
		return order.SelectionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product type")
	}

	input := order.SelectionInput{
		ProductName: validators.SanitizeString(p.ProductName, 128),
		Price:       p.Price,
		ProductType: productType,
		Category:    validators.SanitizeString(p.Category, 64),
	}
	if p.PriceTier != "" {
		tier, err := enums.ParsePriceTier(p.PriceTier)
		if err != nil {
			return order.SelectionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price tier")
		}
		input.PriceTier = tier
	}
	return input, nil
}

// SelectionStart begins customizing a product for the session.
func SelectionStart(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload selectionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.StartSelection(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type optionRequest struct {
	Option string `json:"option" validate:"required"`
}

type selectionMutation func(svc SessionService, ctx context.Context, id uuid.UUID, option string) (*order.SelectionView, error)

func selectionOptionHandler(svc SessionService, logg *logger.Logger, mutate selectionMutation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload optionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := mutate(svc, r.Context(), id, validators.SanitizeString(payload.Option, 64))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// SelectionIncrement adds one unit of an accompaniment option.
func SelectionIncrement(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return selectionOptionHandler(svc, logg, func(svc SessionService, ctx context.Context, id uuid.UUID, option string) (*order.SelectionView, error) {
		return svc.Increment(ctx, id, option)
	})
}

// SelectionDecrement removes one unit of an accompaniment option.
func SelectionDecrement(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return selectionOptionHandler(svc, logg, func(svc SessionService, ctx context.Context, id uuid.UUID, option string) (*order.SelectionView, error) {
		return svc.Decrement(ctx, id, option)
	})
}

// SelectionChoose picks an exclusive option (liter/cup styles, Ninguno,
// the Jäger boost).
func SelectionChoose(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return selectionOptionHandler(svc, logg, func(svc SessionService, ctx context.Context, id uuid.UUID, option string) (*order.SelectionView, error) {
		return svc.Choose(ctx, id, option)
	})
}

type cookingTermRequest struct {
	Term string `json:"term" validate:"required"`
}

// SelectionCookingTerm records the doneness for a pending meat selection.
func SelectionCookingTerm(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cookingTermRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		term, err := enums.ParseCookingTerm(payload.Term)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cooking term"))
			return
		}

		view, err := svc.SetCookingTerm(r.Context(), id, term)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// SelectionCancel discards the in-progress selection.
func SelectionCancel(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.CancelSelection(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cancelled"})
	}
}

type confirmRequest struct {
	RemovedIngredients   string `json:"removed_ingredients"`
	GarnishModifications string `json:"garnish_modifications"`
}

// SelectionConfirm turns the pending selection into a cart line item.
func SelectionConfirm(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload := confirmRequest{}
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		item, err := svc.Confirm(r.Context(), id, order.ConfirmInput{
			RemovedIngredients:   validators.SanitizeString(payload.RemovedIngredients, 256),
			GarnishModifications: validators.SanitizeString(payload.GarnishModifications, 256),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// CartGet returns the session's cart snapshot.
func CartGet(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cart, err := svc.Cart(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

// CartClear empties the session's cart.
func CartClear(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		removed, err := svc.ClearCart(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"removed": removed})
	}
}

// CartItemDelete drops one line item from the cart.
func CartItemDelete(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		itemID := validators.SanitizeString(chi.URLParam(r, "itemId"), 64)
		if itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}
		if err := svc.RemoveItem(r.Context(), id, itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}

// SessionComplete persists the cart as an order and empties it.
func SessionComplete(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		completed, err := svc.Complete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, completed)
	}
}
