package app

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
)

func TestDirectory_Join_CreatesRoomLazily(t *testing.T) {
	req := require.New(t)
	dir := NewDirectory()

	// Given no room exists
	req.Zero(dir.Count())

	// When a connection joins a lower case code
	res, err := dir.Join("abc", "x", "X")

	// Then the room exists under the upper case code
	req.NoError(err)
	req.Equal(domain.RoomCode("ABC"), res.Code)
	req.Equal(1, res.Count)
	req.Empty(res.Others)
	req.Equal([]core.RoomInfo{{Code: "ABC", MemberCount: 1}}, dir.List())
	req.True(dir.IsMember("ABC", "x"))
	req.True(dir.IsMember("aBc", "x"))
}

func TestDirectory_Join_EmptyCode(t *testing.T) {
	dir := NewDirectory()

	_, err := dir.Join("", "x", "X")

	require.ErrorIs(t, err, domain.ErrInvalidRoomCode)
	require.Zero(t, dir.Count())
}

func TestDirectory_Join_SecondMemberSeesFirst(t *testing.T) {
	req := require.New(t)
	dir := NewDirectory()

	_, err := dir.Join("abc", "x", "X")
	req.NoError(err)
	res, err := dir.Join("ABC", "y", "Y")
	req.NoError(err)

	req.Equal(2, res.Count)
	req.Equal([]domain.ConnectionID{"x"}, res.Others)
	req.Equal(1, dir.Count())
}

func TestDirectory_Join_Twice_KeepsOneEntry(t *testing.T) {
	dir := NewDirectory()

	_, _ = dir.Join("abc", "x", "X")
	res, err := dir.Join("abc", "x", "Renamed")

	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	room, ok := dir.Get("abc")
	require.True(t, ok)
	require.Equal(t, []domain.Member{{ID: "x", DisplayName: "Renamed"}}, room.MembersSnapshot())
}

func TestDirectory_Leave(t *testing.T) {
	req := require.New(t)
	dir := NewDirectory()
	_, _ = dir.Join("abc", "x", "X")
	_, _ = dir.Join("abc", "y", "Y")

	// When X leaves while Y remains
	res, err := dir.Leave("abc", "x")

	// Then the room stays with one member
	req.NoError(err)
	req.Equal("X", res.DisplayName)
	req.Equal(1, res.Count())
	req.Equal([]domain.ConnectionID{"y"}, res.Remaining)
	req.False(res.Deleted)
	req.False(dir.IsMember("abc", "x"))
	req.Equal(1, dir.Count())

	// When Y leaves too the room is gone
	res, err = dir.Leave("abc", "y")
	req.NoError(err)
	req.True(res.Deleted)
	req.Zero(dir.Count())
	_, ok := dir.Get("abc")
	req.False(ok)
}

func TestDirectory_Leave_NotAMember(t *testing.T) {
	req := require.New(t)
	dir := NewDirectory()
	_, _ = dir.Join("abc", "x", "X")

	_, err := dir.Leave("abc", "y")
	req.ErrorIs(err, domain.ErrNotAMember)

	_, err = dir.Leave("nope", "x")
	req.ErrorIs(err, domain.ErrNotAMember)

	_, err = dir.Leave("", "x")
	req.ErrorIs(err, domain.ErrInvalidRoomCode)

	req.Equal(1, dir.Count())
}

func TestDirectory_RemoveEverywhere(t *testing.T) {
	req := require.New(t)
	dir := NewDirectory()
	_, _ = dir.Join("b", "x", "X")
	_, _ = dir.Join("a", "x", "X")
	_, _ = dir.Join("a", "y", "Y")
	_, _ = dir.Join("c", "y", "Y")

	// When X is removed from every room
	left := dir.RemoveEverywhere("x")

	// Then A keeps Y and B is deleted, C is untouched
	req.Len(left, 2)
	req.Equal(domain.RoomCode("A"), left[0].Code)
	req.Equal([]domain.ConnectionID{"y"}, left[0].Remaining)
	req.False(left[0].Deleted)
	req.Equal(domain.RoomCode("B"), left[1].Code)
	req.True(left[1].Deleted)
	req.Equal([]core.RoomInfo{{Code: "A", MemberCount: 1}, {Code: "C", MemberCount: 1}}, dir.List())

	// A second call finds nothing
	req.Empty(dir.RemoveEverywhere("x"))
}

func TestDirectory_Recipients(t *testing.T) {
	req := require.New(t)
	dir := NewDirectory()
	_, _ = dir.Join("abc", "x", "X")
	_, _ = dir.Join("abc", "y", "Y")
	_, _ = dir.Join("abc", "z", "Z")

	got, err := dir.Recipients("abc", "x")
	req.NoError(err)
	req.Equal([]domain.ConnectionID{"y", "z"}, got)
	req.Equal(got, dir.MembersExcluding("ABC", "x"))

	_, err = dir.Recipients("abc", "w")
	req.ErrorIs(err, domain.ErrNotAMember)

	_, err = dir.Recipients("other", "x")
	req.ErrorIs(err, domain.ErrRoomNotFound)

	req.Empty(dir.MembersExcluding("other", "x"))
	req.Empty(dir.MembersExcluding("", "x"))
}

func TestDirectory_ConcurrentJoinLeave_NoEmptyRoomsLeft(t *testing.T) {
	dir := NewDirectory()
	codes := []string{"a", "b", "c"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := domain.ConnectionID(uuid.NewString())
			for j := 0; j < 100; j++ {
				code := codes[(i+j)%len(codes)]
				_, err := dir.Join(code, id, fmt.Sprintf("user-%d", i))
				if err != nil {
					t.Errorf("join: %v", err)
					return
				}
				if j%3 == 0 {
					dir.RemoveEverywhere(id)
					continue
				}
				if _, err := dir.Leave(code, id); err != nil {
					t.Errorf("leave: %v", err)
					return
				}
			}
			dir.RemoveEverywhere(id)
		}(i)
	}
	wg.Wait()

	require.Zero(t, dir.Count())
	dir.mu.RLock()
	defer dir.mu.RUnlock()
	require.Empty(t, dir.rooms)
}
