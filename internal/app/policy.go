package app

//go:generate mockgen -destination=../mocks/mock_policy.go -package=mocks github.com/dkeye/Relay/internal/app Policy

import "github.com/dkeye/Relay/internal/domain"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	KickMember
	DropFrame
)

// Policy decides what happens to a recipient whose send queue is full.
type Policy interface {
	OnBackPressure(id domain.ConnectionID) BackpressureAction
}

// SimplePolicy kicks slow consumers; their disconnect cleanup then tells the
// rest of the room they left.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(domain.ConnectionID) BackpressureAction {
	return KickMember
}

// LenientPolicy only drops the frame.
type LenientPolicy struct{}

func (LenientPolicy) OnBackPressure(domain.ConnectionID) BackpressureAction {
	return DropFrame
}
