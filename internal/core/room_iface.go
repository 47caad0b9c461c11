package core

import (
	"github.com/dkeye/Relay/internal/domain"
)

// JoinResult is the state of a room right after a member was added.
type JoinResult struct {
	Code   domain.RoomCode
	Count  int
	Others []domain.ConnectionID
}

// LeaveResult is the state of a room right after a member was removed.
// Remaining is a snapshot of who is still inside.
type LeaveResult struct {
	Code        domain.RoomCode
	DisplayName string
	Remaining   []domain.ConnectionID
	Deleted     bool
}

// Count is the member count after removal.
func (r LeaveResult) Count() int { return len(r.Remaining) }

// RoomService is the core-facing API of a room.
// It owns the membership set but never touches transport resources.
type RoomService interface {
	Code() domain.RoomCode
	MemberCount() int
	MembersSnapshot() []domain.Member

	// AddMember reports false when the room was closed by its last member
	// leaving; the caller must retry against a fresh room.
	AddMember(id domain.ConnectionID, name string) (JoinResult, bool)
	RemoveMember(id domain.ConnectionID) (LeaveResult, bool)
	IsMember(id domain.ConnectionID) bool
	MembersExcluding(id domain.ConnectionID) []domain.ConnectionID
	// Recipients checks that from is a member and snapshots the others
	// under one lock.
	Recipients(from domain.ConnectionID) ([]domain.ConnectionID, error)
}

type RoomInfo struct {
	Code        domain.RoomCode `json:"room_code"`
	MemberCount int             `json:"users_count"`
}

// RoomDirectory maps room codes to live rooms. A room is present iff it has
// at least one member.
type RoomDirectory interface {
	Join(raw string, id domain.ConnectionID, name string) (JoinResult, error)
	Leave(raw string, id domain.ConnectionID) (LeaveResult, error)
	RemoveEverywhere(id domain.ConnectionID) []LeaveResult
	MembersExcluding(raw string, id domain.ConnectionID) []domain.ConnectionID
	IsMember(raw string, id domain.ConnectionID) bool
	Recipients(raw string, from domain.ConnectionID) ([]domain.ConnectionID, error)
	Count() int
	List() []RoomInfo
}

// PublishResult reports delivery stats/backpressure to orchestrator.
type PublishResult struct {
	SendTo  int
	Dropped []domain.ConnectionID
}
