package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/auth"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const pingInterval = 30 * time.Second

// UpgradeInboxWS upgrades an agent dashboard connection onto the inbox feed.
// Browsers cannot set an Authorization header on a websocket dial, so the
// token rides the query string and only admin tokens are accepted.
func UpgradeInboxWS(authClient *auth.AuthClient, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		token := c.Query("token")
		if token == "" {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"token required"}`))
			return
		}

		claims, err := authClient.ValidateToken(token)
		if err != nil {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
			return
		}
		if claims.Role != constants.AdminRole {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"admin role required"}`))
			return
		}

		client := &Client{
			AgentID: claims.Subject,
			Send:    make(chan []byte, 256),
		}
		hub.Register(client)
		defer client.Close()

		logger.Log.Info("Inbox dashboard connected",
			zap.String("agent_id", client.AgentID),
			zap.Int("connections", hub.ClientCount()))

		go writePump(client, conn)
		readPump(conn)

		logger.Log.Info("Inbox dashboard disconnected",
			zap.String("agent_id", client.AgentID))
	}
}

// writePump copies events from the client's send buffer to the connection
// and keeps it alive with pings.
func writePump(c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.Send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection until the peer goes away. The feed is
// one-way; anything the dashboard sends is discarded.
func readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
