package core

import (
	"slices"
	"sync"

	"github.com/dkeye/Relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// roomImpl is a threadsafe in-memory room.
// It never closes adapter-owned resources.
type roomImpl struct {
	code    domain.RoomCode
	mu      sync.RWMutex
	members map[domain.ConnectionID]string
	closed  bool
}

func NewRoomService(code domain.RoomCode) RoomService {
	return &roomImpl{
		code:    code,
		members: make(map[domain.ConnectionID]string),
	}
}

func (r *roomImpl) Code() domain.RoomCode { return r.code }

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *roomImpl) AddMember(id domain.ConnectionID, name string) (JoinResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return JoinResult{}, false
	}
	r.members[id] = name
	log.Debug().Str("module", "core.room").Str("room", string(r.code)).Str("sid", string(id)).Msg("member added")
	return JoinResult{
		Code:   r.code,
		Count:  len(r.members),
		Others: r.othersLocked(id),
	}, true
}

// RemoveMember closes the room when the last member leaves. A closed room
// never accepts members again.
func (r *roomImpl) RemoveMember(id domain.ConnectionID) (LeaveResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.members[id]
	if !ok {
		return LeaveResult{}, false
	}
	delete(r.members, id)
	if len(r.members) == 0 {
		r.closed = true
	}
	log.Debug().Str("module", "core.room").Str("room", string(r.code)).Str("sid", string(id)).Msg("member removed")
	return LeaveResult{
		Code:        r.code,
		DisplayName: name,
		Remaining:   r.othersLocked(""),
		Deleted:     r.closed,
	}, true
}

func (r *roomImpl) IsMember(id domain.ConnectionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[id]
	return ok
}

func (r *roomImpl) MembersExcluding(id domain.ConnectionID) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.othersLocked(id)
}

func (r *roomImpl) Recipients(from domain.ConnectionID) ([]domain.ConnectionID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, domain.ErrRoomNotFound
	}
	if _, ok := r.members[from]; !ok {
		return nil, domain.ErrNotAMember
	}
	return r.othersLocked(from), nil
}

func (r *roomImpl) MembersSnapshot() []domain.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Member, 0, len(r.members))
	for id, name := range r.members {
		out = append(out, domain.Member{ID: id, DisplayName: name})
	}
	return out
}

// othersLocked returns member ids in ascending order.
func (r *roomImpl) othersLocked(exclude domain.ConnectionID) []domain.ConnectionID {
	out := make([]domain.ConnectionID, 0, len(r.members))
	for id := range r.members {
		if id == exclude {
			continue
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
