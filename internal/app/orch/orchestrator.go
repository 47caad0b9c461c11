// Package orch is the relay engine: it applies inbound events to the room
// directory and connection registry and says who must hear about it.
package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Relay/internal/app"
	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
	"github.com/dkeye/Relay/internal/metrics"
)

type Orchestrator struct {
	Registry *app.Registry
	Rooms    core.RoomDirectory
	Policy   app.Policy
}

// Dispatch handles ev for sid and delivers the outcome.
func (o *Orchestrator) Dispatch(sid domain.ConnectionID, ev core.Inbound) core.PublishResult {
	return o.Deliver(o.Handle(sid, ev))
}

// Handle applies one inbound event. It never touches the transport; the
// returned deliveries carry recipient snapshots taken under the room locks.
func (o *Orchestrator) Handle(sid domain.ConnectionID, ev core.Inbound) []core.Delivery {
	metrics.Events.WithLabelValues(string(ev.Name())).Inc()

	var out []core.Delivery
	switch e := ev.(type) {
	case core.Connect:
		out = o.onConnect(sid, e)
	case core.JoinRoom:
		out = o.onJoin(sid, e)
	case core.SendMessage:
		out = o.onSendMessage(sid, e)
	case core.LeaveRoom:
		out = o.onLeave(sid, e)
	case core.Disconnect:
		out = o.onDisconnect(sid)
	default:
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Str("event", string(ev.Name())).Msg("unhandled event")
	}

	metrics.Rooms.Set(float64(o.Rooms.Count()))
	metrics.Connections.Set(float64(o.Registry.Count()))
	return out
}

// Deliver encodes each event once and queues it for every recipient that is
// still connected.
func (o *Orchestrator) Deliver(deliveries []core.Delivery) core.PublishResult {
	res := core.PublishResult{}
	for _, d := range deliveries {
		if len(d.To) == 0 {
			continue
		}
		frame, err := core.Encode(d.Event)
		if err != nil {
			log.Error().Err(err).Str("module", "orch").Msg("encode outbound")
			continue
		}
		for _, id := range d.To {
			sig, ok := o.Registry.Signal(id)
			if !ok {
				continue
			}
			if err := sig.TrySend(frame); err != nil {
				metrics.Dropped.WithLabelValues(string(d.Event.Event)).Inc()
				res.Dropped = append(res.Dropped, id)
				o.onBackPressure(id, err)
				continue
			}
			metrics.Delivered.WithLabelValues(string(d.Event.Event)).Inc()
			res.SendTo++
		}
	}
	log.Debug().Str("module", "orch").Int("sent_to", res.SendTo).Int("dropped", len(res.Dropped)).Msg("deliver result")
	return res
}

func (o *Orchestrator) onBackPressure(id domain.ConnectionID, err error) {
	if o.Policy == nil {
		return
	}
	switch o.Policy.OnBackPressure(id) {
	case app.KickMember:
		log.Warn().Err(err).Str("module", "orch").Str("sid", string(id)).Msg("slow consumer kicked")
		o.Registry.Cancel(id)
	case app.DropFrame, app.NoAction:
	}
}

func to(ids ...domain.ConnectionID) []domain.ConnectionID { return ids }

func sendTo(out []core.Delivery, ids []domain.ConnectionID, ev core.Outbound) []core.Delivery {
	if len(ids) == 0 {
		return out
	}
	return append(out, core.Delivery{To: ids, Event: ev})
}
