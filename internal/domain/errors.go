package domain

import "errors"

var (
	ErrInvalidRoomCode = errors.New("room code required")
	ErrNotAMember      = errors.New("not in room")
	ErrRoomNotFound    = errors.New("room not found")
)
