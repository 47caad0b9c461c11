package domain

import "strings"

type RoomCode string

// NormalizeRoomCode upper-cases raw so codes typed by clients in any case
// address the same room.
func NormalizeRoomCode(raw string) (RoomCode, error) {
	code := strings.ToUpper(raw)
	if code == "" {
		return "", ErrInvalidRoomCode
	}
	return RoomCode(code), nil
}

// Member is a read-only view of a room entry.
type Member struct {
	ID          ConnectionID `json:"id"`
	DisplayName string       `json:"username"`
}
