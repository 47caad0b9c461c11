package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Relay/internal/domain"
)

func TestRegistry_Connect_DefaultName(t *testing.T) {
	req := require.New(t)
	reg := NewRegistry()

	reg.Connect("c1", nil, nil)

	req.True(reg.IsConnected("c1"))
	req.Equal(domain.DefaultDisplayName, reg.DisplayName("c1"))
	req.Equal(1, reg.Count())

	// No signal bound
	_, ok := reg.Signal("c1")
	req.False(ok)
}

func TestRegistry_Disconnect_ReturnsRooms(t *testing.T) {
	req := require.New(t)
	reg := NewRegistry()
	reg.Connect("c1", nil, nil)
	reg.TrackJoin("c1", "B")
	reg.TrackJoin("c1", "A")
	reg.TrackJoin("c1", "C")
	reg.TrackLeave("c1", "C")

	req.Equal([]domain.RoomCode{"A", "B"}, reg.RoomsOf("c1"))

	rooms, ok := reg.Disconnect("c1")
	req.True(ok)
	req.Equal([]domain.RoomCode{"A", "B"}, rooms)
	req.False(reg.IsConnected("c1"))
	req.Zero(reg.Count())
}

func TestRegistry_Disconnect_Unknown(t *testing.T) {
	reg := NewRegistry()

	rooms, ok := reg.Disconnect("ghost")

	require.False(t, ok)
	require.Empty(t, rooms)
	require.Equal(t, domain.DefaultDisplayName, reg.DisplayName("ghost"))
}

func TestRegistry_SetDisplayName(t *testing.T) {
	reg := NewRegistry()
	reg.Connect("c1", nil, nil)

	reg.SetDisplayName("c1", "Alice")
	reg.SetDisplayName("ghost", "Nobody")

	require.Equal(t, "Alice", reg.DisplayName("c1"))
	require.False(t, reg.IsConnected("ghost"))
}

func TestRegistry_Cancel(t *testing.T) {
	req := require.New(t)
	reg := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	reg.Connect("c1", nil, cancel)

	req.True(reg.Cancel("c1"))
	req.ErrorIs(ctx.Err(), context.Canceled)
	req.False(reg.Cancel("ghost"))
}
