// notifications.go
package cartControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CartNotice is the add-to-cart confirmation pushed to a session's
// connected clients.
type CartNotice struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Quantity int    `json:"quantity"`
}

// NotificationHub fans cart confirmations out to the websocket clients
// of the session that triggered them.
type NotificationHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string // conn -> session ID
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{clients: make(map[*websocket.Conn]string)}
}

// GET /ws/notifications
func (h *NotificationHub) Handler(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = sid
	h.mu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

// Notify pushes a confirmation to every client of the given session.
func (h *NotificationHub) Notify(sessionID, message string, quantity int) {
	data, err := json.Marshal(CartNotice{Type: "cart_add", Message: message, Quantity: quantity})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client, sid := range h.clients {
		if sid == sessionID {
			client.WriteMessage(websocket.TextMessage, data)
		}
	}
}
