// internal/handler/ws_handler.go
package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"status-service/internal/middleware"
	"status-service/internal/service"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// WSHandler streams status-change events to connected watchers. Events
// arrive over the redis status channel and fan out to every client.
type WSHandler struct {
	redis  *redis.Client
	logger *zap.Logger

	clients   map[*wsClient]bool
	clientsMu sync.RWMutex
	once      sync.Once
}

// NewWSHandler creates a new WSHandler
func NewWSHandler(redisClient *redis.Client, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		redis:   redisClient,
		logger:  logger,
		clients: make(map[*wsClient]bool),
	}
}

// HandleStatusWebSocket upgrades the connection and subscribes the client
// to the status event stream.
func (h *WSHandler) HandleStatusWebSocket(c *gin.Context) {
	if h.redis == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: ErrorDetail{Code: "STREAM_UNAVAILABLE", Message: "Status stream is not available"},
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	h.once.Do(func() { go h.subscribe() })

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, 64),
	}

	h.clientsMu.Lock()
	h.clients[client] = true
	h.clientsMu.Unlock()
	middleware.SetStatusWatchers(float64(h.clientCount()))

	h.logger.Info("status watcher connected", zap.String("remote", conn.RemoteAddr().String()))

	go h.writePump(client)
	go h.readPump(client)
}

// subscribe pumps redis status events into every connected client.
func (h *WSHandler) subscribe() {
	ctx := context.Background()
	pubsub := h.redis.Subscribe(ctx, service.StatusUpdatesChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		h.clientsMu.RLock()
		for client := range h.clients {
			select {
			case client.send <- payload:
			default:
				// Slow consumer, drop the event rather than block the fan-out.
			}
		}
		h.clientsMu.RUnlock()
	}
}

func (h *WSHandler) readPump(client *wsClient) {
	defer h.disconnect(client)

	client.conn.SetReadLimit(512)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Watchers never send application data; the read loop only services
	// control frames and detects the close.
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WSHandler) writePump(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) disconnect(client *wsClient) {
	h.clientsMu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.clientsMu.Unlock()

	client.conn.Close()
	middleware.SetStatusWatchers(float64(h.clientCount()))
}

func (h *WSHandler) clientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}
