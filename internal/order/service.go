package order

import (
	"context"
	"fmt"

	"github.com/angelmondragon/cantina-pos-backend/internal/accompaniments"
	"github.com/angelmondragon/cantina-pos-backend/internal/liquor"
	"github.com/angelmondragon/cantina-pos-backend/internal/selection"
	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/angelmondragon/cantina-pos-backend/pkg/logger"
	"github.com/angelmondragon/cantina-pos-backend/pkg/metrics"
	"github.com/google/uuid"
)

const msgEmptyOrder = "La orden está vacía. Por favor agregue productos."

// Flow tells the client what the selection expects next.
type Flow string

const (
	// FlowDirect means the item was added to the cart immediately.
	FlowDirect Flow = "direct"
	// FlowAccompaniments means the client drives the option counters.
	FlowAccompaniments Flow = "accompaniments"
	// FlowFood expects an optional ingredient-removal payload on confirm.
	FlowFood Flow = "food"
	// FlowMeat additionally requires a cooking term before confirm.
	FlowMeat Flow = "meat"
)

// SelectionInput describes the product a waiter tapped.
type SelectionInput struct {
	ProductName string
	Price       float64
	ProductType enums.ProductType
	Category    string
	PriceTier   enums.PriceTier
}

// SelectionView is the state of the in-progress selection after an
// operation, or the added item when the product skipped customization.
type SelectionView struct {
	Flow     Flow                      `json:"flow"`
	Added    *LineItem                 `json:"added,omitempty"`
	Options  *accompaniments.OptionSet `json:"options,omitempty"`
	Liquor   enums.LiquorCategory      `json:"liquorCategory,omitempty"`
	Counts   []selection.OptionCount   `json:"counts"`
	Selected []string                  `json:"selected"`
	Total    int                       `json:"total"`
}

// CartView is the cart snapshot returned to clients.
type CartView struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

// Service drives order sessions: selections, carts, and completed orders.
type Service struct {
	sessions *SessionManager
	store    *Store
	metrics  *metrics.OrderMetrics
	logg     *logger.Logger
}

// NewService wires the order service.
func NewService(store *Store, orderMetrics *metrics.OrderMetrics, logg *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("order store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{
		sessions: NewSessionManager(),
		store:    store,
		metrics:  orderMetrics,
		logg:     logg,
	}, nil
}

// CreateSession opens a new order session.
func (s *Service) CreateSession(ctx context.Context) uuid.UUID {
	session := s.sessions.Create()
	s.logg.Info(s.logg.WithSessionID(ctx, session.ID.String()), "order session created")
	return session.ID
}

// DeleteSession discards a session and everything in it.
func (s *Service) DeleteSession(id uuid.UUID) {
	s.sessions.Delete(id)
}

// StartSelection begins customizing a product. Beverages and the no-modal
// bottles are added to the cart directly; everything else opens a
// selection the client drives with the remaining operations.
func (s *Service) StartSelection(ctx context.Context, sessionID uuid.UUID, input SelectionInput) (*SelectionView, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if input.ProductName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.pending = nil

	switch input.ProductType {
	case enums.ProductTypeBeverage:
		return s.addDirect(ctx, session, BuildBeverageItem(input.ProductName, input.Price))

	case enums.ProductTypeFood:
		flow := FlowFood
		if input.Category == enums.FoodCategoryMeat {
			flow = FlowMeat
		}
		session.pending = &pendingSelection{
			productName: input.ProductName,
			price:       input.Price,
			productType: input.ProductType,
			category:    input.Category,
			state:       selection.New(accompaniments.OptionSet{}),
		}
		return &SelectionView{Flow: flow, Counts: []selection.OptionCount{}, Selected: []string{}}, nil

	case enums.ProductTypeLiquor:
		if !input.PriceTier.IsValid() || input.PriceTier == enums.PriceTierSingle {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "liquor requires a bottle, liter, or cup tier")
		}
		category := liquor.Classify(input.ProductName)
		if accompaniments.IsDirectBottle(category, input.PriceTier, input.ProductName) {
			return s.addDirect(ctx, session, BuildDirectBottleItem(input.ProductName, input.Price))
		}

		set := accompaniments.OptionsFor(category, input.PriceTier, input.ProductName)
		state := selection.New(set)
		session.pending = &pendingSelection{
			productName: input.ProductName,
			price:       input.Price,
			productType: input.ProductType,
			category:    input.Category,
			liquor:      category,
			tier:        input.PriceTier,
			state:       state,
		}
		return selectionView(session.pending), nil
	}

	// Unrecognized types fall through to a plain add, same as the legacy
	// handler did.
	return s.addDirect(ctx, session, BuildBeverageItem(input.ProductName, input.Price))
}

func (s *Service) addDirect(ctx context.Context, session *Session, item LineItem) (*SelectionView, error) {
	added, err := session.cart.Add(item)
	if err != nil {
		return nil, err
	}
	s.metrics.IncLineItems(1)
	s.logg.Info(s.logg.WithSessionID(ctx, session.ID.String()), "line item added")
	return &SelectionView{
		Flow:     FlowDirect,
		Added:    &added,
		Counts:   []selection.OptionCount{},
		Selected: []string{},
	}, nil
}

func (s *Service) withPending(sessionID uuid.UUID, fn func(p *pendingSelection) error) (*SelectionView, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.pending == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no selection in progress")
	}
	if err := fn(session.pending); err != nil {
		return nil, err
	}
	return selectionView(session.pending), nil
}

// Increment adds one unit of an accompaniment option.
func (s *Service) Increment(ctx context.Context, sessionID uuid.UUID, option string) (*SelectionView, error) {
	view, err := s.withPending(sessionID, func(p *pendingSelection) error {
		if err := p.state.Increment(option); err != nil {
			s.metrics.IncRejection(string(p.state.Set().Policy))
			return err
		}
		return nil
	})
	return view, err
}

// Decrement removes one unit of an accompaniment option.
func (s *Service) Decrement(ctx context.Context, sessionID uuid.UUID, option string) (*SelectionView, error) {
	return s.withPending(sessionID, func(p *pendingSelection) error {
		p.state.Decrement(option)
		return nil
	})
}

// Choose picks an exclusive option (liter/cup styles, Ninguno, 2 Boost).
func (s *Service) Choose(ctx context.Context, sessionID uuid.UUID, option string) (*SelectionView, error) {
	view, err := s.withPending(sessionID, func(p *pendingSelection) error {
		if err := p.state.Choose(option); err != nil {
			s.metrics.IncRejection(string(p.state.Set().Policy))
			return err
		}
		return nil
	})
	return view, err
}

// SetCookingTerm records the doneness for a pending meat selection.
func (s *Service) SetCookingTerm(ctx context.Context, sessionID uuid.UUID, term enums.CookingTerm) (*SelectionView, error) {
	return s.withPending(sessionID, func(p *pendingSelection) error {
		if p.productType != enums.ProductTypeFood || p.category != enums.FoodCategoryMeat {
			return pkgerrors.New(pkgerrors.CodeValidation, "cooking terms only apply to meat products")
		}
		p.state.SetCookingTerm(term)
		return nil
	})
}

// CancelSelection discards the in-progress selection.
func (s *Service) CancelSelection(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	session.mu.Lock()
	session.pending = nil
	session.mu.Unlock()
	return nil
}

// ConfirmInput carries the free-text food customizations.
type ConfirmInput struct {
	RemovedIngredients   string
	GarnishModifications string
}

// Confirm turns the pending selection into a cart line item.
func (s *Service) Confirm(ctx context.Context, sessionID uuid.UUID, input ConfirmInput) (*LineItem, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.pending == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no selection in progress")
	}

	p := session.pending
	var item LineItem
	switch {
	case p.productType == enums.ProductTypeLiquor:
		item, err = BuildLiquorItem(p.productName, p.price, p.tier, p.state)
	case p.productType == enums.ProductTypeFood && p.category == enums.FoodCategoryMeat:
		item, err = BuildMeatItem(p.productName, p.price, p.state, input.GarnishModifications)
	default:
		item = BuildFoodItem(p.productName, p.price, input.RemovedIngredients)
	}
	if err != nil {
		return nil, err
	}

	added, err := session.cart.Add(item)
	if err != nil {
		return nil, err
	}
	session.pending = nil
	s.metrics.IncLineItems(1)
	s.logg.Info(s.logg.WithSessionID(ctx, session.ID.String()), "line item added")
	return &added, nil
}

// Cart returns the session's cart snapshot.
func (s *Service) Cart(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return &CartView{Items: session.cart.Items(), Total: session.cart.Total()}, nil
}

// RemoveItem drops one line item from the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string) error {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if !session.cart.Remove(itemID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "line item not found")
	}
	return nil
}

// ClearCart empties the cart and returns how many items were dropped.
func (s *Service) ClearCart(ctx context.Context, sessionID uuid.UUID) (int, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return 0, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.cart.Clear(), nil
}

// Complete persists the cart as an order and empties it.
func (s *Service) Complete(ctx context.Context, sessionID uuid.UUID) (*PersistedOrder, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.cart.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgEmptyOrder)
	}

	order := s.store.NewOrder(session.cart.Items(), session.cart.Total())
	if err := s.store.Append(ctx, order); err != nil {
		return nil, err
	}
	session.cart.Clear()

	s.metrics.IncCompleted()
	s.metrics.ObserveTotal(order.Total)
	ctx = s.logg.WithSessionID(ctx, session.ID.String())
	ctx = s.logg.WithOrderID(ctx, order.ID)
	s.logg.Info(ctx, "order completed")
	return &order, nil
}

// ListOrders returns the active order ledger.
func (s *Service) ListOrders(ctx context.Context) ([]PersistedOrder, error) {
	return s.store.ListActive(ctx)
}

// DeleteOrder soft-deletes an order into the history.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logg.Info(s.logg.WithOrderID(ctx, id), "order moved to history")
	return nil
}

// ListHistory returns the deleted order ledger.
func (s *Service) ListHistory(ctx context.Context) ([]PersistedOrder, error) {
	return s.store.ListHistory(ctx)
}

// DeleteFromHistory permanently removes one order from the history.
func (s *Service) DeleteFromHistory(ctx context.Context, id int64) error {
	return s.store.DeleteFromHistory(ctx, id)
}

// ClearHistory wipes the order history.
func (s *Service) ClearHistory(ctx context.Context) error {
	return s.store.ClearHistory(ctx)
}

func selectionView(p *pendingSelection) *SelectionView {
	set := p.state.Set()
	view := &SelectionView{
		Counts:   p.state.Counts(),
		Selected: p.state.Selected(),
		Total:    p.state.DisplayTotal(),
	}
	if p.productType == enums.ProductTypeLiquor {
		view.Flow = FlowAccompaniments
		view.Options = &set
		view.Liquor = p.liquor
	} else {
		view.Flow = FlowFood
		if p.category == enums.FoodCategoryMeat {
			view.Flow = FlowMeat
		}
	}
	return view
}
