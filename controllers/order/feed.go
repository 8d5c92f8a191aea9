// feed.go
package orderControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Tuka1911/dymokminiapp/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed pushes every finalized order to connected operator clients.
type Feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*websocket.Conn]bool)}
}

// GET /orders/ws
func (f *Feed) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		f.mu.Lock()
		f.clients[conn] = true
		f.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				f.mu.Lock()
				delete(f.clients, conn)
				f.mu.Unlock()
				break
			}
		}
	}
}

// Broadcast sends a finalized order and its receipt to every client.
// Matches the Finalizer's OnOrder hook.
func (f *Feed) Broadcast(ord models.Order, receipt models.Receipt) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		if err := client.WriteJSON(gin.H{"order": ord, "receipt": receipt}); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}
