package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
)

func (o *Orchestrator) onJoin(sid domain.ConnectionID, e core.JoinRoom) []core.Delivery {
	if !o.Registry.IsConnected(sid) {
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Msg("join from unknown connection")
		return nil
	}
	name := o.Registry.DisplayName(sid)
	if e.Username != nil {
		name = *e.Username
	}

	res, err := o.Rooms.Join(e.RoomCode, sid, name)
	if err != nil {
		log.Info().Err(err).Str("module", "orch").Str("sid", string(sid)).Msg("join rejected")
		return sendTo(nil, to(sid), core.Error(err))
	}
	o.Registry.SetDisplayName(sid, name)
	o.Registry.TrackJoin(sid, res.Code)

	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(res.Code)).Str("username", name).Int("count", res.Count).Msg("added to room")
	out := sendTo(nil, to(sid), core.JoinedRoom(res.Code, name, res.Count))
	return sendTo(out, res.Others, core.UserJoined(name, res.Count))
}

// onLeave notifies the remaining members and the leaving client itself.
// Leaving a room one is not in is a no-op.
func (o *Orchestrator) onLeave(sid domain.ConnectionID, e core.LeaveRoom) []core.Delivery {
	res, err := o.Rooms.Leave(e.RoomCode, sid)
	if err != nil {
		log.Debug().Err(err).Str("module", "orch").Str("sid", string(sid)).Str("room", e.RoomCode).Msg("leave ignored")
		return nil
	}
	o.Registry.TrackLeave(sid, res.Code)

	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(res.Code)).Bool("deleted", res.Deleted).Msg("left room")
	recipients := append(res.Remaining, sid)
	return sendTo(nil, recipients, core.UserLeft(res.DisplayName, res.Count()))
}
