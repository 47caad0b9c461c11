package core

import (
	"context"

	"github.com/dkeye/Relay/internal/domain"
)

type EventName string

const (
	EventConnect     EventName = "connect"
	EventDisconnect  EventName = "disconnect"
	EventJoinRoom    EventName = "join_room"
	EventSendMessage EventName = "send_message"
	EventLeaveRoom   EventName = "leave_room"

	EventConnected      EventName = "connected"
	EventJoinedRoom     EventName = "joined_room"
	EventUserJoined     EventName = "user_joined"
	EventUserLeft       EventName = "user_left"
	EventReceiveMessage EventName = "receive_message"
	EventError          EventName = "error"
)

const ConnectedStatus = "Connected to relay server"

// Inbound is the closed set of events the engine handles.
type Inbound interface {
	Name() EventName
}

// Connect is produced by the transport on upgrade; it hands over the
// connection's outbound queue and the func that tears it down.
type Connect struct {
	Signal SignalConnection
	Cancel context.CancelFunc
}

type Disconnect struct{}

// JoinRoom carries a nil Username when the client omitted the field.
type JoinRoom struct {
	RoomCode string  `json:"room_code"`
	Username *string `json:"username"`
}

type SendMessage struct {
	RoomCode string  `json:"room_code"`
	Username *string `json:"username"`
	Message  string  `json:"message"`
}

type LeaveRoom struct {
	RoomCode string `json:"room_code"`
}

func (Connect) Name() EventName     { return EventConnect }
func (Disconnect) Name() EventName  { return EventDisconnect }
func (JoinRoom) Name() EventName    { return EventJoinRoom }
func (SendMessage) Name() EventName { return EventSendMessage }
func (LeaveRoom) Name() EventName   { return EventLeaveRoom }

// Outbound is what the engine asks the transport to deliver.
type Outbound struct {
	Event EventName `json:"event"`
	Data  any       `json:"data"`
}

type ConnectedPayload struct {
	Status string `json:"status"`
}

type JoinedRoomPayload struct {
	RoomCode   domain.RoomCode `json:"room_code"`
	Username   string          `json:"username"`
	UsersCount int             `json:"users_count"`
}

// PresencePayload is used by user_joined and user_left.
type PresencePayload struct {
	Username   string `json:"username"`
	UsersCount int    `json:"users_count"`
}

type MessagePayload struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Delivery pairs one outbound event with the connections that must get it.
type Delivery struct {
	To    []domain.ConnectionID
	Event Outbound
}

func Connected() Outbound {
	return Outbound{Event: EventConnected, Data: ConnectedPayload{Status: ConnectedStatus}}
}

func JoinedRoom(code domain.RoomCode, username string, count int) Outbound {
	return Outbound{Event: EventJoinedRoom, Data: JoinedRoomPayload{RoomCode: code, Username: username, UsersCount: count}}
}

func UserJoined(username string, count int) Outbound {
	return Outbound{Event: EventUserJoined, Data: PresencePayload{Username: username, UsersCount: count}}
}

func UserLeft(username string, count int) Outbound {
	return Outbound{Event: EventUserLeft, Data: PresencePayload{Username: username, UsersCount: count}}
}

func ReceiveMessage(username, message string) Outbound {
	return Outbound{Event: EventReceiveMessage, Data: MessagePayload{Username: username, Message: message}}
}

func Error(err error) Outbound {
	return Outbound{Event: EventError, Data: ErrorPayload{Message: capitalize(err.Error())}}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
