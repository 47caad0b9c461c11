package signal

import (
	"time"

	"github.com/gorilla/websocket"
)

// keepAlive arms the read deadline and pushes it forward on every pong.
func (ctl *SignalWSController) keepAlive(c *WsSignalConn) error {
	if err := c.conn.SetReadDeadline(time.Now().Add(ctl.Cfg.PongWait)); err != nil {
		return err
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(ctl.Cfg.PongWait))
	})
	return nil
}

func (ctl *SignalWSController) ping(c *WsSignalConn) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.Cfg.WriteWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}
