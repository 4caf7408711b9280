package order

import (
	"sync"

	"github.com/angelmondragon/cantina-pos-backend/internal/selection"
	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/google/uuid"
)

// pendingSelection holds the product being customized until it is
// confirmed or cancelled.
type pendingSelection struct {
	productName string
	price       float64
	productType enums.ProductType
	category    string
	liquor      enums.LiquorCategory
	tier        enums.PriceTier
	state       *selection.State
}

// Session owns one cart and at most one in-progress selection. The service
// serializes all access through the session mutex.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	cart    *Cart
	pending *pendingSelection
}

func newSession() *Session {
	return &Session{ID: uuid.New(), cart: NewCart()}
}

// SessionManager tracks live order sessions by id.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionManager returns an empty manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[uuid.UUID]*Session)}
}

// Create registers and returns a new session.
func (m *SessionManager) Create() *Session {
	session := newSession()
	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session
}

// Get resolves a session by id.
func (m *SessionManager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}
	return session, nil
}

// Delete drops a session. Unknown ids are ignored.
func (m *SessionManager) Delete(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
