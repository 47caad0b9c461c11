package core

//go:generate mockgen -destination=../mocks/mock_signal.go -package=mocks github.com/dkeye/Relay/internal/core SignalConnection

// Frame is an encoded outbound event, one websocket text message.
type Frame []byte

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
