package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
)

func (o *Orchestrator) onConnect(sid domain.ConnectionID, e core.Connect) []core.Delivery {
	o.Registry.Connect(sid, e.Signal, e.Cancel)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Msg("client connected")
	return sendTo(nil, to(sid), core.Connected())
}

// onDisconnect is idempotent: a second call for the same sid finds nothing
// to clean up and emits nothing.
func (o *Orchestrator) onDisconnect(sid domain.ConnectionID) []core.Delivery {
	left := o.Rooms.RemoveEverywhere(sid)
	rooms, ok := o.Registry.Disconnect(sid)
	if !ok && len(left) == 0 {
		log.Debug().Str("module", "orch").Str("sid", string(sid)).Msg("disconnect for unknown connection")
		return nil
	}

	var out []core.Delivery
	for _, res := range left {
		out = sendTo(out, res.Remaining, core.UserLeft(res.DisplayName, res.Count()))
	}
	log.Info().
		Str("module", "orch").
		Str("sid", string(sid)).
		Int("rooms", len(rooms)).
		Int("left", len(left)).
		Msg("client disconnected")
	return out
}
