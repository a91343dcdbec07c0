package calculator

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"calc-engine/internal/expr"
)

// ErrSessionNotFound is returned for an unknown session ID.
var ErrSessionNotFound = errors.New("session not found")

// Store owns the live sessions. Each session has its own lock, so events for
// one session are applied in order while different sessions proceed
// independently.
type Store struct {
	strategy        expr.Strategy
	historyCapacity int

	mu       sync.RWMutex
	sessions map[string]*storedSession
}

type storedSession struct {
	mu sync.Mutex
	s  *Session
}

// NewStore returns an empty store whose sessions evaluate with strategy. When
// reg is non-nil a calculator_sessions_active gauge is registered with it.
func NewStore(strategy expr.Strategy, historyCapacity int, reg prometheus.Registerer) (*Store, error) {
	st := &Store{
		strategy:        strategy,
		historyCapacity: historyCapacity,
		sessions:        make(map[string]*storedSession),
	}

	if reg != nil {
		gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "calculator_sessions_active",
			Help: "Number of calculator sessions currently held in memory.",
		}, func() float64 {
			return float64(st.Len())
		})
		if err := reg.Register(gauge); err != nil {
			return nil, err
		}
	}

	return st, nil
}

// Create starts a new session and returns its view.
func (st *Store) Create() SessionView {
	id := uuid.New().String()
	s := NewSession(id, st.strategy, st.historyCapacity)

	st.mu.Lock()
	st.sessions[id] = &storedSession{s: s}
	st.mu.Unlock()

	return s.View()
}

// Do runs fn with exclusive access to the session id.
func (st *Store) Do(id string, fn func(*Session) error) error {
	st.mu.RLock()
	ss, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	return fn(ss.s)
}

// Delete drops the session id.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
