package signal

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
)

func (ctl *SignalWSController) writePump(ctx context.Context, sid domain.ConnectionID, c *WsSignalConn) {
	ticker := time.NewTicker(ctl.Cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.Cfg.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := ctl.ping(c); err != nil {
				log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("writePump ping")
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, sid domain.ConnectionID, c *WsSignalConn) {
	defer log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")

	if err := ctl.keepAlive(c); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump set deadline")
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				logReadError(sid, err)
				return
			}
			ctl.handleSignal(sid, data)
		}
	}
}

func logReadError(sid domain.ConnectionID, err error) {
	level := zerolog.InfoLevel
	switch {
	case errors.Is(err, websocket.ErrReadLimit):
		level = zerolog.WarnLevel
	case websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived):
		var netErr net.Error
		if !errors.As(err, &netErr) {
			level = zerolog.WarnLevel
		}
	}
	log.WithLevel(level).Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read ended")
}

// handleSignal turns one client frame into an engine event. Frames that do
// not decode get an error event back; the connection stays open.
func (ctl *SignalWSController) handleSignal(sid domain.ConnectionID, data []byte) {
	ev, err := core.Decode(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad frame")
		ctl.Orch.Deliver([]core.Delivery{{
			To:    []domain.ConnectionID{sid},
			Event: core.Error(err),
		}})
		return
	}
	ctl.Orch.Dispatch(sid, ev)
}
