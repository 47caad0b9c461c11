package app

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
)

type sessionEntry struct {
	Conn   *domain.Connection
	Signal core.SignalConnection
	Cancel context.CancelFunc
	Rooms  map[domain.RoomCode]struct{}
}

// Registry is the connection registry: every live transport session, its
// display name and the rooms the engine has recorded for it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnectionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.ConnectionID]*sessionEntry),
	}
}

// Connect registers a new connection with the default display name.
// Registering an id twice replaces the previous entry.
func (r *Registry) Connect(id domain.ConnectionID, signal core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; ok {
		log.Warn().Str("module", "app.registry").Str("sid", string(id)).Msg("duplicate connection id, replacing")
	}
	r.sessions[id] = &sessionEntry{
		Conn:   domain.NewConnection(id),
		Signal: signal,
		Cancel: cancel,
		Rooms:  make(map[domain.RoomCode]struct{}),
	}
	log.Info().Str("module", "app.registry").Str("sid", string(id)).Msg("bound signal")
}

// Disconnect removes the connection and returns the rooms it was recorded
// in. Unknown ids are a silent no-op.
func (r *Registry) Disconnect(id domain.ConnectionID) ([]domain.RoomCode, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	delete(r.sessions, id)
	log.Info().Str("module", "app.registry").Str("sid", string(id)).Msg("unbind session")
	return sortedRooms(e.Rooms), true
}

func (r *Registry) IsConnected(id domain.ConnectionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[id]
	return ok
}

// DisplayName returns the default name for unknown ids.
func (r *Registry) DisplayName(id domain.ConnectionID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[id]; ok {
		return e.Conn.DisplayName
	}
	return domain.DefaultDisplayName
}

func (r *Registry) SetDisplayName(id domain.ConnectionID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		e.Conn.SetDisplayName(name)
		log.Debug().Str("module", "app.registry").Str("sid", string(id)).Str("username", name).Msg("updated username")
	}
}

func (r *Registry) Signal(id domain.ConnectionID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[id]; ok && e.Signal != nil {
		return e.Signal, true
	}
	return nil, false
}

func (r *Registry) TrackJoin(id domain.ConnectionID, code domain.RoomCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		e.Rooms[code] = struct{}{}
	}
}

func (r *Registry) TrackLeave(id domain.ConnectionID, code domain.RoomCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		delete(e.Rooms, code)
	}
}

func (r *Registry) RoomsOf(id domain.ConnectionID) []domain.RoomCode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil
	}
	return sortedRooms(e.Rooms)
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Cancel tears down the transport of id; the adapter then dispatches the
// usual disconnect.
func (r *Registry) Cancel(id domain.ConnectionID) bool {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("sid", string(id)).Msg("canceled session")
	return true
}

func sortedRooms(set map[domain.RoomCode]struct{}) []domain.RoomCode {
	out := lo.Keys(set)
	slices.Sort(out)
	return out
}
