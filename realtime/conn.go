package realtime

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Conn is the connection handle the registry tracks. Tests substitute fakes;
// production wraps a websocket connection.
type Conn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
	Close() error
}

// wsConn serializes writes: delivery pushes originate from other connections'
// read goroutines, and the underlying websocket permits one writer at a time.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func WrapConn(conn *websocket.Conn) Conn {
	return &wsConn{conn: conn}
}

func (c *wsConn) ReadJSON(v interface{}) error {
	return c.conn.ReadJSON(v)
}

func (c *wsConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}
