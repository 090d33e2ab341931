package activityws

import (
	"encoding/json"
	"log"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Hub fans workout-completion events out to connected coach dashboards.
// The feed is one-way: clients only listen.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	id   string
	send chan []byte
}

type Event struct {
	Type         string `json:"type"`
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	WorkoutID    string `json:"workout_id,omitempty"`
	WorkoutTitle string `json:"workout_title,omitempty"`
	Timestamp    string `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		id:   uuid.NewString(),
		send: make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.id] = client
		case client := <-h.unregister:
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Publish enqueues an event without blocking the caller; the feed is best
// effort and a full queue drops the event.
func (h *Hub) Publish(event Event) {
	event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	select {
	case h.broadcast <- &event:
	default:
	}
}

func (h *Hub) deliver(event *Event) {
	encoded, err := json.Marshal(event)
	if err != nil {
		log.Printf("activity hub encode event: %v", err)
		return
	}

	for id, client := range h.clients {
		select {
		case client.send <- encoded:
		default:
			delete(h.clients, id)
			close(client.send)
		}
	}
}

// ReadPump discards inbound frames and tears the client down on close.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
