package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chachabrian/profast-backend/internal/logger"
	"github.com/chachabrian/profast-backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 256
)

var ErrHubStopped = errors.New("tracking hub stopped")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one WebSocket subscriber to a single tracking id.
type Client struct {
	TrackingID string
	Conn       *websocket.Conn
	Send       chan []byte
	Hub        *TrackingHub
}

type broadcast struct {
	trackingID string
	message    []byte
}

// TrackingHub fans tracking events out to the subscribers of each tracking id.
// Only Run mutates the subscriber set.
type TrackingHub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcast
	done       chan struct{}
	mutex      sync.RWMutex
	log        *logger.Logger
}

// WebSocketMessage is the frame written to subscribers.
type WebSocketMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewTrackingHub(log *logger.Logger) *TrackingHub {
	return &TrackingHub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcast, sendBufferSize),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run owns the subscriber set until ctx is done, then closes every client.
func (h *TrackingHub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for id, set := range h.clients {
				for client := range set {
					close(client.Send)
				}
				delete(h.clients, id)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			h.mutex.Lock()
			set, ok := h.clients[client.TrackingID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.TrackingID] = set
			}
			set[client] = true
			h.mutex.Unlock()
			h.log.Debug().Str("tracking_id", client.TrackingID).Msg("tracking subscriber connected")

		case client := <-h.unregister:
			h.mutex.Lock()
			h.remove(client)
			h.mutex.Unlock()
			h.log.Debug().Str("tracking_id", client.TrackingID).Msg("tracking subscriber disconnected")

		case msg := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients[msg.trackingID] {
				select {
				case client.Send <- msg.message:
				default:
					h.remove(client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// remove must be called with the write lock held.
func (h *TrackingHub) remove(client *Client) {
	set, ok := h.clients[client.TrackingID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.Send)
	if len(set) == 0 {
		delete(h.clients, client.TrackingID)
	}
}

// Broadcast queues event for the subscribers of its tracking id. It never
// blocks the caller; when the queue is full the event is dropped.
func (h *TrackingHub) Broadcast(event *models.TrackingLog) {
	message, err := json.Marshal(WebSocketMessage{Type: "tracking_event", Data: event})
	if err != nil {
		h.log.Error().Err(err).Msg("marshal tracking event")
		return
	}

	select {
	case h.broadcast <- broadcast{trackingID: event.TrackingID, message: message}:
	default:
		h.log.Warn().Str("tracking_id", event.TrackingID).Msg("tracking broadcast queue full, event dropped")
	}
}

// Subscribers returns the number of clients following trackingID.
func (h *TrackingHub) Subscribers(trackingID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[trackingID])
}

// ServeTracking upgrades the request and subscribes the connection to trackingID.
func (h *TrackingHub) ServeTracking(w http.ResponseWriter, r *http.Request, trackingID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		TrackingID: trackingID,
		Conn:       conn,
		Send:       make(chan []byte, sendBufferSize),
		Hub:        h,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return ErrHubStopped
	}

	go client.writePump()
	go client.readPump()
	return nil
}

// readPump only drains control frames; subscribers never send data.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.log.Warn().Err(err).Str("tracking_id", c.TrackingID).Msg("websocket read")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
