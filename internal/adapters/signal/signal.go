package signal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/dkeye/Relay/internal/app/orch"
	"github.com/dkeye/Relay/internal/config"
	"github.com/dkeye/Relay/internal/core"
	"github.com/dkeye/Relay/internal/domain"
)

var (
	ErrBackpressure = errors.New("backpressure")
	ErrClosed       = errors.New("connection closed")
)

type SignalWSController struct {
	Orch     *orch.Orchestrator
	Cfg      *config.Config
	upgrader websocket.Upgrader
}

func NewSignalWSController(o *orch.Orchestrator, cfg *config.Config) *SignalWSController {
	ctl := &SignalWSController{Orch: o, Cfg: cfg}
	ctl.upgrader = websocket.Upgrader{CheckOrigin: ctl.checkOrigin}
	return ctl
}

// WsSignalConn is the outbound side of one websocket: a bounded queue
// drained by writePump.
type WsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *WsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

// checkOrigin admits non-browser clients, which send no Origin header.
func (ctl *SignalWSController) checkOrigin(r *http.Request) bool {
	if ctl.Cfg.AllowAllOrigins() {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range ctl.Cfg.AllowedOrigins {
		if strings.EqualFold(strings.TrimRight(allowed, "/"), origin) {
			return true
		}
	}
	log.Warn().Str("module", "signal").Str("origin", origin).Msg("origin rejected")
	return false
}

// HandleSignal upgrades the request and serves the connection until the
// client goes away, the server shuts down or the connection is kicked.
// Disconnect is dispatched before the send queue is closed so no one
// queues frames to a dead connection.
func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	sid := domain.ConnectionID(uuid.NewString())
	logger := log.With().
		Str("module", "signal").
		Str("sid", string(sid)).
		Str("client_token", c.GetString("client_token")).
		Logger()

	ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error().Err(err).Msg("ws upgrade")
		return
	}
	ws.SetReadLimit(ctl.Cfg.ReadLimit)
	logger.Info().Str("remote", c.Request.RemoteAddr).Msg("new WS connection")

	conn := &WsSignalConn{
		conn: ws,
		send: make(chan core.Frame, ctl.Cfg.SendBuffer),
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctl.Orch.Dispatch(sid, core.Connect{Signal: conn, Cancel: cancel})

	var wg conc.WaitGroup
	wg.Go(func() { ctl.writePump(ctx, sid, conn) })
	wg.Go(func() {
		// Unblocks ReadMessage on kick or shutdown.
		<-ctx.Done()
		_ = ws.Close()
	})
	wg.Go(func() {
		defer cancel()
		ctl.readPump(ctx, sid, conn)
	})
	if r := wg.WaitAndRecover(); r != nil {
		logger.Error().Str("panic", r.String()).Msg("pump panicked")
	}

	ctl.Orch.Dispatch(sid, core.Disconnect{})
	conn.Close()
	logger.Info().Msg("WS connection closed")
}
