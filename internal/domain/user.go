// Package domain contains entity without logic, just meta-data
package domain

const DefaultDisplayName = "Anonymous"

// ConnectionID is assigned by the transport, one per live session.
type ConnectionID string

type Connection struct {
	ID          ConnectionID `json:"id"`
	DisplayName string       `json:"username"`
}

// NewConnection is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewConnection(id ConnectionID) *Connection {
	return &Connection{ID: id, DisplayName: DefaultDisplayName}
}

// SetDisplayName stores the name as given. Names are relayed verbatim.
func (c *Connection) SetDisplayName(name string) {
	c.DisplayName = name
}
