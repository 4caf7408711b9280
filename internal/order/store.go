package order

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/angelmondragon/cantina-pos-backend/pkg/redis"
)

// persistedDateLayout matches the legacy ticket format ("2/1/2026, 15:04:05").
const persistedDateLayout = "2/1/2006, 15:04:05"

// PersistedOrder is a completed order as stored in Redis. The date stays a
// formatted string for parity with historical payloads; sorting uses the
// millisecond id.
type PersistedOrder struct {
	ID        int64      `json:"id"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	Date      string     `json:"date"`
	DeletedAt string     `json:"deletedAt,omitempty"`
}

// Store persists completed orders and their history as JSON arrays under
// two fixed keys, mirroring the ticket ledgers the kitchen works from.
type Store struct {
	kv  redis.KV
	now func() time.Time
}

// NewStore builds a store over the shared Redis client.
func NewStore(kv redis.KV) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "kv client required")
	}
	return &Store{kv: kv, now: time.Now}, nil
}

// NewOrder stamps a persisted order from cart contents.
func (s *Store) NewOrder(items []LineItem, total float64) PersistedOrder {
	now := s.now()
	return PersistedOrder{
		ID:    now.UnixMilli(),
		Items: items,
		Total: total,
		Date:  now.Format(persistedDateLayout),
	}
}

func (s *Store) load(ctx context.Context, key string) ([]PersistedOrder, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if redis.IsNil(err) {
			return []PersistedOrder{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading orders")
	}
	var orders []PersistedOrder
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding stored orders")
	}
	if orders == nil {
		orders = []PersistedOrder{}
	}
	return orders, nil
}

func (s *Store) save(ctx context.Context, key string, orders []PersistedOrder) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding orders")
	}
	if err := s.kv.Set(ctx, key, string(payload), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving orders")
	}
	return nil
}

// ListActive returns the saved, not yet deleted orders.
func (s *Store) ListActive(ctx context.Context) ([]PersistedOrder, error) {
	return s.load(ctx, s.kv.OrdersKey())
}

// ListHistory returns the soft-deleted orders.
func (s *Store) ListHistory(ctx context.Context) ([]PersistedOrder, error) {
	return s.load(ctx, s.kv.OrderHistoryKey())
}

// Append adds a completed order to the active ledger.
func (s *Store) Append(ctx context.Context, order PersistedOrder) error {
	orders, err := s.ListActive(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return s.save(ctx, s.kv.OrdersKey(), orders)
}

// Delete moves an active order into the history with a deletion stamp.
func (s *Store) Delete(ctx context.Context, id int64) error {
	orders, err := s.ListActive(ctx)
	if err != nil {
		return err
	}

	var deleted *PersistedOrder
	remaining := make([]PersistedOrder, 0, len(orders))
	for _, order := range orders {
		if order.ID == id {
			deleted = &order
			continue
		}
		remaining = append(remaining, order)
	}
	if deleted == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	if err := s.save(ctx, s.kv.OrdersKey(), remaining); err != nil {
		return err
	}

	history, err := s.ListHistory(ctx)
	if err != nil {
		return err
	}
	deleted.DeletedAt = s.now().Format(persistedDateLayout)
	history = append(history, *deleted)
	return s.save(ctx, s.kv.OrderHistoryKey(), history)
}

// DeleteFromHistory removes an order from the history permanently. The
// active ledger is never touched.
func (s *Store) DeleteFromHistory(ctx context.Context, id int64) error {
	history, err := s.ListHistory(ctx)
	if err != nil {
		return err
	}

	found := false
	remaining := make([]PersistedOrder, 0, len(history))
	for _, order := range history {
		if order.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, order)
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found in history")
	}
	return s.save(ctx, s.kv.OrderHistoryKey(), remaining)
}

// ClearHistory wipes the history ledger.
func (s *Store) ClearHistory(ctx context.Context) error {
	return s.save(ctx, s.kv.OrderHistoryKey(), []PersistedOrder{})
}
