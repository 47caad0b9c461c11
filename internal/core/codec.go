package core

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

var (
	ErrBadFrame     = errors.New("bad frame")
	ErrUnknownEvent = errors.New("unknown event")
)

type envelope struct {
	Event EventName       `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Decode parses a client frame. connect and disconnect are produced by the
// transport itself and are rejected when they arrive over the wire.
func Decode(f Frame) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(f, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFrame, err)
	}

	var in Inbound
	switch env.Event {
	case EventJoinRoom:
		var p JoinRoom
		if err := decodeData(env.Data, &p); err != nil {
			return nil, err
		}
		in = p
	case EventSendMessage:
		var p SendMessage
		if err := decodeData(env.Data, &p); err != nil {
			return nil, err
		}
		in = p
	case EventLeaveRoom:
		var p LeaveRoom
		if err := decodeData(env.Data, &p); err != nil {
			return nil, err
		}
		in = p
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, env.Event)
	}
	return in, nil
}

func decodeData(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFrame, err)
	}
	return nil
}

func Encode(o Outbound) (Frame, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", o.Event, err)
	}
	return b, nil
}
