package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is one frame on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ConnectedPayload is the first frame every client receives
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}

// Client is one open stream. EventChannel is closed when the client is
// unregistered or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event

	types   map[string]struct{}
	dropped atomic.Int64
}

func (c *Client) wants(eventType string) bool {
	if c.types == nil {
		return true
	}
	_, ok := c.types[eventType]
	return ok
}

// Dropped reports how many events this client missed because it fell behind
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Hub fans game events out to open streams. Delivery never waits on a
// client: a full client buffer loses the event for that client only.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool

	queue    chan Event
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a hub. Nothing is delivered until Start.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		queue:   make(chan Event, BroadcastBufferSize),
		done:    make(chan struct{}),
	}
}

// Start runs the delivery loop in the background
func (h *Hub) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case <-h.done:
				return
			case evt := <-h.queue:
				h.deliver(evt)
			}
		}
	}()
}

func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.wants(evt.Type) {
			continue
		}
		select {
		case c.EventChannel <- evt:
		default:
			c.dropped.Add(1)
		}
	}
}

// Stop ends delivery and closes every client channel. Later calls are no-ops
// and later registrations are refused.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.closed = true
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
	})
}

// Register opens a client for the given event types, or for every type when
// none are given. It returns nil after Stop.
func (h *Hub) Register(eventTypes []string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			c.types[t] = struct{}{}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.clients[c.ID] = c
	return c
}

// Unregister closes and forgets a client. Unknown IDs are ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(c.EventChannel)
	delete(h.clients, clientID)
	if n := c.Dropped(); n > 0 {
		slog.Debug(LogMsgClientDropped, "client_id", clientID, "dropped", n)
	}
}

// Broadcast queues an event for delivery and returns immediately. The event
// is lost if the hub queue is full.
func (h *Hub) Broadcast(eventType string, payload interface{}, at time.Time) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: at.Unix(),
		Payload:   payload,
	}
	select {
	case h.queue <- evt:
	default:
		slog.Warn(LogMsgEventDropped, "type", eventType)
	}
}

// ClientCount returns the number of open streams
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt as a text/event-stream frame
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", evt.Type, err)
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "id: %s\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data)
	return b.Bytes(), nil
}
