package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRoomCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want RoomCode
		err  error
	}{
		{name: "lower case", raw: "abc", want: "ABC"},
		{name: "mixed case", raw: "aBc12", want: "ABC12"},
		{name: "already upper", raw: "ABC", want: "ABC"},
		{name: "whitespace kept", raw: " ab ", want: " AB "},
		{name: "empty", raw: "", err: ErrInvalidRoomCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRoomCode(tt.raw)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewConnection_DefaultsToAnonymous(t *testing.T) {
	c := NewConnection("c1")
	require.Equal(t, DefaultDisplayName, c.DisplayName)

	c.SetDisplayName("")
	require.Empty(t, c.DisplayName)
}
