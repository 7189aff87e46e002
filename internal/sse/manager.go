package sse

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Manager fans engine events out to connected dashboard clients over
// Server-Sent Events. Events are ephemeral presence-style signals: a client
// that cannot keep up simply misses them.
type Manager struct {
	clients    map[chan []byte]bool
	clientsMux sync.RWMutex

	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewManager(logger *zap.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		clients: make(map[chan []byte]bool),
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// AddClient registers a new dashboard connection and returns its channel.
func (m *Manager) AddClient() chan []byte {
	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()

	channel := make(chan []byte, 10)
	m.clients[channel] = true

	m.logger.Info("added SSE client", zap.Int("total", len(m.clients)))
	return channel
}

// RemoveClient unregisters a connection and closes its channel.
func (m *Manager) RemoveClient(channel chan []byte) {
	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()

	if _, exists := m.clients[channel]; !exists {
		return
	}
	delete(m.clients, channel)
	close(channel)

	m.logger.Info("removed SSE client", zap.Int("remaining", len(m.clients)))
}

// Broadcast sends an event to every connected client. Sends never block: a
// full client buffer drops the event for that client.
func (m *Manager) Broadcast(eventType string, data interface{}) {
	event := map[string]interface{}{
		"type": eventType,
		"data": data,
		"time": time.Now().Unix(),
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		m.logger.Error("failed to marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}

	m.clientsMux.RLock()
	defer m.clientsMux.RUnlock()

	for channel := range m.clients {
		select {
		case channel <- jsonData:
		default:
			m.logger.Warn("dropped event for slow client", zap.String("type", eventType))
		}
	}
}

// ClientCount returns the number of connected clients.
func (m *Manager) ClientCount() int {
	m.clientsMux.RLock()
	defer m.clientsMux.RUnlock()

	return len(m.clients)
}

// Close shuts the manager down and disconnects every client.
func (m *Manager) Close() {
	m.cancel()

	m.clientsMux.Lock()
	defer m.clientsMux.Unlock()

	for channel := range m.clients {
		close(channel)
		delete(m.clients, channel)
	}
}
