package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkeye/Relay/internal/core"
)

const Version = "1.0"

type StatusResponse struct {
	Status      string `json:"status"`
	ActiveRooms int    `json:"active_rooms"`
	Version     string `json:"version,omitempty"`
}

type RoomsResponse struct {
	Rooms []core.RoomInfo `json:"rooms"`
}

type StatusHandler struct {
	Rooms core.RoomDirectory
}

func (h *StatusHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:      "Chat server running",
		ActiveRooms: h.Rooms.Count(),
		Version:     Version,
	})
}

func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:      "ok",
		ActiveRooms: h.Rooms.Count(),
	})
}

func (h *StatusHandler) ListRooms(c *gin.Context) {
	rooms := h.Rooms.List()
	if rooms == nil {
		rooms = []core.RoomInfo{}
	}
	c.JSON(http.StatusOK, RoomsResponse{Rooms: rooms})
}
