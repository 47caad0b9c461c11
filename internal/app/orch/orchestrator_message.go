package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
)

// onSendMessage relays the body untouched, empty bodies included, to every
// other member. The sender never gets an echo.
func (o *Orchestrator) onSendMessage(sid domain.ConnectionID, e core.SendMessage) []core.Delivery {
	if !o.Registry.IsConnected(sid) {
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Msg("message from unknown connection")
		return nil
	}
	recipients, err := o.Rooms.Recipients(e.RoomCode, sid)
	if err != nil {
		log.Info().Err(err).Str("module", "orch").Str("sid", string(sid)).Str("room", e.RoomCode).Msg("message rejected")
		return sendTo(nil, to(sid), core.Error(err))
	}
	name := o.Registry.DisplayName(sid)
	if e.Username != nil {
		name = *e.Username
	}

	log.Debug().Str("module", "orch").Str("sid", string(sid)).Str("room", e.RoomCode).Int("recipients", len(recipients)).Msg("relay message")
	return sendTo(nil, recipients, core.ReceiveMessage(name, e.Message))
}
