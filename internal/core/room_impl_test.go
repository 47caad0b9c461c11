package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Relay/internal/domain"
)

func TestRoom_AddMember_OverwritesName(t *testing.T) {
	req := require.New(t)
	room := NewRoomService("ABC")

	res, ok := room.AddMember("a", "Alice")
	req.True(ok)
	req.Equal(1, res.Count)
	req.Empty(res.Others)

	// Re-joining keeps one entry per connection.
	res, ok = room.AddMember("a", "Alicia")
	req.True(ok)
	req.Equal(1, res.Count)
	req.Equal([]domain.Member{{ID: "a", DisplayName: "Alicia"}}, room.MembersSnapshot())
}

func TestRoom_RemoveLastMemberClosesRoom(t *testing.T) {
	req := require.New(t)
	room := NewRoomService("ABC")
	room.AddMember("a", "Alice")

	res, ok := room.RemoveMember("a")
	req.True(ok)
	req.True(res.Deleted)
	req.Equal("Alice", res.DisplayName)
	req.Zero(res.Count())

	// A closed room is never reused.
	_, ok = room.AddMember("b", "Bob")
	req.False(ok)

	_, err := room.Recipients("b")
	req.ErrorIs(err, domain.ErrRoomNotFound)
}

func TestRoom_RemoveUnknownMember(t *testing.T) {
	room := NewRoomService("ABC")
	room.AddMember("a", "Alice")

	_, ok := room.RemoveMember("b")
	require.False(t, ok)
	require.Equal(t, 1, room.MemberCount())
}

func TestRoom_RecipientsExcludeSender(t *testing.T) {
	req := require.New(t)
	room := NewRoomService("ABC")
	room.AddMember("c", "Carol")
	room.AddMember("a", "Alice")
	room.AddMember("b", "Bob")

	got, err := room.Recipients("a")
	req.NoError(err)
	req.Equal([]domain.ConnectionID{"b", "c"}, got)

	_, err = room.Recipients("z")
	req.ErrorIs(err, domain.ErrNotAMember)

	req.Equal([]domain.ConnectionID{"a", "c"}, room.MembersExcluding("b"))
	req.True(room.IsMember("c"))
	req.False(room.IsMember("z"))
}
