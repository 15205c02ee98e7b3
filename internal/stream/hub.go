// Package stream рассылает изменения карты и уведомления подключенным клиентам по WebSocket.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/traffic_overlay/internal/mapview"
	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/sirupsen/logrus"
)

// События потока
const (
	EventLayers = "layers"
	EventNotice = "notice"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

// Message - сообщение, отправляемое клиенту
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub хранит подключения. Медленные клиенты отключаются, рассылка не блокируется.
type Hub struct {
	sync.RWMutex
	clients  map[*client]struct{}
	last     []byte
	upgrader websocket.Upgrader
	logger   *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeWS принимает подключение и сразу отправляет последний снимок карты
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.Lock()
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	count := len(h.clients)
	h.Unlock()

	h.logger.WithFields(logrus.Fields{
		"remote":  r.RemoteAddr,
		"clients": count,
	}).Info("Stream client connected")

	go h.writePump(c)
	go h.readPump(c)
	return nil
}

// BroadcastSnapshot рассылает снимок карты и запоминает его для новых клиентов
func (h *Hub) BroadcastSnapshot(snap mapview.Snapshot) {
	raw, err := encode(EventLayers, snap)
	if err != nil {
		h.logger.WithError(err).Error("Failed to encode map snapshot")
		return
	}

	h.Lock()
	h.last = raw
	h.Unlock()
	h.broadcast(raw)
}

// Publish рассылает уведомление всем клиентам
func (h *Hub) Publish(_ context.Context, n notice.Notice) error {
	raw, err := encode(EventNotice, n)
	if err != nil {
		return fmt.Errorf("failed to encode notice: %w", err)
	}
	h.broadcast(raw)
	return nil
}

// Clients возвращает число подключенных клиентов
func (h *Hub) Clients() int {
	h.RLock()
	defer h.RUnlock()
	return len(h.clients)
}

// Close отключает всех клиентов
func (h *Hub) Close() {
	h.Lock()
	defer h.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

func (h *Hub) broadcast(raw []byte) {
	h.Lock()
	defer h.Unlock()
	for c := range h.clients {
		select {
		case c.send <- raw:
		default:
			h.logger.Warn("Stream client is too slow, disconnecting")
			close(c.send)
			delete(h.clients, c)
		}
	}
}

func (h *Hub) remove(c *client) {
	h.Lock()
	defer h.Unlock()
	if _, ok := h.clients[c]; ok {
		close(c.send)
		delete(h.clients, c)
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case raw, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				h.logger.WithError(err).Debug("Failed to write to stream client")
				h.remove(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(c)
				return
			}
		}
	}
}

// readPump читает только управляющие кадры, чтобы заметить отключение клиента
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		h.logger.Info("Stream client disconnected")
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func encode(event string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Event: event, Data: payload})
}
