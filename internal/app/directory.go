package app

import (
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
)

// Directory is the room directory. Rooms are created on first join and
// unlinked as soon as their last member leaves.
type Directory struct {
	mu    sync.RWMutex
	rooms map[domain.RoomCode]core.RoomService
}

var _ core.RoomDirectory = (*Directory)(nil)

func NewDirectory() *Directory {
	return &Directory{rooms: make(map[domain.RoomCode]core.RoomService)}
}

func (d *Directory) getOrCreate(code domain.RoomCode) core.RoomService {
	d.mu.RLock()
	room, ok := d.rooms[code]
	d.mu.RUnlock()
	if ok {
		return room
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if room, ok = d.rooms[code]; ok {
		return room
	}
	room = core.NewRoomService(code)
	d.rooms[code] = room
	log.Info().Str("module", "app.directory").Str("room", string(code)).Msg("room created")
	return room
}

func (d *Directory) get(code domain.RoomCode) (core.RoomService, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	room, ok := d.rooms[code]
	return room, ok
}

// unlink drops room only if it is still the one registered under its code.
func (d *Directory) unlink(room core.RoomService) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cur, ok := d.rooms[room.Code()]; ok && cur == room {
		delete(d.rooms, room.Code())
		log.Info().Str("module", "app.directory").Str("room", string(room.Code())).Msg("room deleted (empty)")
	}
}

func (d *Directory) Join(raw string, id domain.ConnectionID, name string) (core.JoinResult, error) {
	code, err := domain.NormalizeRoomCode(raw)
	if err != nil {
		return core.JoinResult{}, err
	}
	for {
		room := d.getOrCreate(code)
		if res, ok := room.AddMember(id, name); ok {
			return res, nil
		}
		// Lost the race against the last member leaving.
		d.unlink(room)
	}
}

func (d *Directory) Leave(raw string, id domain.ConnectionID) (core.LeaveResult, error) {
	code, err := domain.NormalizeRoomCode(raw)
	if err != nil {
		return core.LeaveResult{}, err
	}
	room, ok := d.get(code)
	if !ok {
		return core.LeaveResult{}, domain.ErrNotAMember
	}
	res, ok := room.RemoveMember(id)
	if !ok {
		return core.LeaveResult{}, domain.ErrNotAMember
	}
	if res.Deleted {
		d.unlink(room)
	}
	return res, nil
}

// RemoveEverywhere is used on disconnect. Results are ordered by room code.
func (d *Directory) RemoveEverywhere(id domain.ConnectionID) []core.LeaveResult {
	d.mu.RLock()
	rooms := lo.Values(d.rooms)
	d.mu.RUnlock()

	var out []core.LeaveResult
	for _, room := range rooms {
		res, ok := room.RemoveMember(id)
		if !ok {
			continue
		}
		if res.Deleted {
			d.unlink(room)
		}
		out = append(out, res)
	}
	slices.SortFunc(out, func(a, b core.LeaveResult) int {
		return strings.Compare(string(a.Code), string(b.Code))
	})
	return out
}

func (d *Directory) MembersExcluding(raw string, id domain.ConnectionID) []domain.ConnectionID {
	code, err := domain.NormalizeRoomCode(raw)
	if err != nil {
		return nil
	}
	room, ok := d.get(code)
	if !ok {
		return nil
	}
	return room.MembersExcluding(id)
}

func (d *Directory) IsMember(raw string, id domain.ConnectionID) bool {
	code, err := domain.NormalizeRoomCode(raw)
	if err != nil {
		return false
	}
	room, ok := d.get(code)
	return ok && room.IsMember(id)
}

func (d *Directory) Recipients(raw string, from domain.ConnectionID) ([]domain.ConnectionID, error) {
	code, err := domain.NormalizeRoomCode(raw)
	if err != nil {
		return nil, err
	}
	room, ok := d.get(code)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room.Recipients(from)
}

// Get returns a live room by code.
func (d *Directory) Get(raw string) (core.RoomService, bool) {
	code, err := domain.NormalizeRoomCode(raw)
	if err != nil {
		return nil, false
	}
	room, ok := d.get(code)
	if !ok || room.MemberCount() == 0 {
		return nil, false
	}
	return room, true
}

// Count skips a room that was just emptied and is about to be unlinked.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return lo.CountBy(lo.Values(d.rooms), func(r core.RoomService) bool {
		return r.MemberCount() > 0
	})
}

func (d *Directory) List() []core.RoomInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(d.rooms))
	for code, r := range d.rooms {
		if n := r.MemberCount(); n > 0 {
			out = append(out, core.RoomInfo{Code: code, MemberCount: n})
		}
	}
	slices.SortFunc(out, func(a, b core.RoomInfo) int {
		return strings.Compare(string(a.Code), string(b.Code))
	})
	return out
}
