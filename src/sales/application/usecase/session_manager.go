package usecase

import (
	"log"
	"sync"
	"time"

	"palengke/src/sales/domain/entity"
	"palengke/src/sales/domain/port"

	"github.com/google/uuid"
)

// SessionManager administra una sesión POS (y su SaleAggregator) por cada
// pantalla de venta abierta. El agregador se crea al abrir la sesión y se
// desarma al cerrarla; el estado es del proceso, no compartido entre
// instancias.
type SessionManager struct {
	window   time.Duration
	currency string
	notifier port.SaleNotifier

	mu       sync.RWMutex
	sessions map[uuid.UUID]*SaleAggregator
}

// NewSessionManager crea un nuevo administrador de sesiones POS
func NewSessionManager(window time.Duration, currency string, notifier port.SaleNotifier) *SessionManager {
	return &SessionManager{
		window:   window,
		currency: currency,
		notifier: notifier,
		sessions: make(map[uuid.UUID]*SaleAggregator),
	}
}

// Open crea una sesión nueva con su agregador y retorna su ID
func (m *SessionManager) Open() uuid.UUID {
	sessionID := uuid.New()
	agg := NewSaleAggregator(sessionID, m.window, m.currency, m.notifier)

	m.mu.Lock()
	m.sessions[sessionID] = agg
	m.mu.Unlock()

	log.Printf("🟢 POS session opened: %s", sessionID)
	return sessionID
}

// Get retorna el agregador de una sesión abierta
func (m *SessionManager) Get(sessionID uuid.UUID) (*SaleAggregator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	agg, ok := m.sessions[sessionID]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return agg, nil
}

// Close cierra una sesión: desarma su agregador (cancela el timer en vuelo)
// y la remueve del registro
func (m *SessionManager) Close(sessionID uuid.UUID) error {
	m.mu.Lock()
	agg, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		return entity.ErrSessionNotFound
	}

	agg.Close()
	log.Printf("🔴 POS session closed: %s", sessionID)
	return nil
}

// CloseAll desarma todas las sesiones (shutdown del servicio)
func (m *SessionManager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*SaleAggregator)
	m.mu.Unlock()

	for _, agg := range sessions {
		agg.Close()
	}
}

// Count retorna la cantidad de sesiones abiertas
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
