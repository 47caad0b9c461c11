package core

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Relay/internal/domain"
)

func TestDecode_JoinRoom(t *testing.T) {
	req := require.New(t)

	in, err := Decode(Frame(`{"event":"join_room","data":{"room_code":"abc","username":"X"}}`))
	req.NoError(err)

	join, ok := in.(JoinRoom)
	req.True(ok)
	req.Equal("abc", join.RoomCode)
	req.NotNil(join.Username)
	req.Equal("X", *join.Username)
}

func TestDecode_JoinRoomWithoutUsername(t *testing.T) {
	in, err := Decode(Frame(`{"event":"join_room","data":{"room_code":"abc"}}`))
	require.NoError(t, err)
	require.Nil(t, in.(JoinRoom).Username)
}

func TestDecode_SendMessageKeepsEmptyBody(t *testing.T) {
	in, err := Decode(Frame(`{"event":"send_message","data":{"room_code":"ABC","username":"X","message":""}}`))
	require.NoError(t, err)

	msg := in.(SendMessage)
	require.Equal(t, EventSendMessage, msg.Name())
	require.Empty(t, msg.Message)
}

func TestDecode_LeaveRoomWithoutData(t *testing.T) {
	in, err := Decode(Frame(`{"event":"leave_room"}`))
	require.NoError(t, err)
	require.Equal(t, LeaveRoom{}, in)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		err   error
	}{
		{name: "not json", frame: `hello`, err: ErrBadFrame},
		{name: "unknown event", frame: `{"event":"shout"}`, err: ErrUnknownEvent},
		{name: "connect over the wire", frame: `{"event":"connect"}`, err: ErrUnknownEvent},
		{name: "disconnect over the wire", frame: `{"event":"disconnect"}`, err: ErrUnknownEvent},
		{name: "wrong field type", frame: `{"event":"join_room","data":{"room_code":5}}`, err: ErrBadFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(Frame(tt.frame))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEncode_JoinedRoom(t *testing.T) {
	f, err := Encode(JoinedRoom("ABC", "X", 2))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(f, &got))
	require.Equal(t, "joined_room", got["event"])
	require.Equal(t, map[string]any{
		"room_code":   "ABC",
		"username":    "X",
		"users_count": float64(2),
	}, got["data"])
}

func TestError_CapitalizesMessage(t *testing.T) {
	out := Error(domain.ErrInvalidRoomCode)
	require.Equal(t, EventError, out.Event)
	require.Equal(t, ErrorPayload{Message: "Room code required"}, out.Data)
}
