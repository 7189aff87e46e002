package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/presence"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/sse"

	"github.com/labstack/echo/v4"
)

type StreamHandler struct {
	manager   *sse.Manager
	simulator *presence.Simulator
	logger    echo.Logger
}

func NewStreamHandler(manager *sse.Manager, simulator *presence.Simulator, logger echo.Logger) *StreamHandler {
	return &StreamHandler{
		manager:   manager,
		simulator: simulator,
		logger:    logger,
	}
}

// StreamEvents provides Server-Sent Events for real-time dashboard updates:
// delivered emails, typing pulses, notifications and queue signals.
func (h *StreamHandler) StreamEvents(c echo.Context) error {
	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")

	clientChannel := h.manager.AddClient()
	defer h.manager.RemoveClient(clientChannel)

	// Send initial connection confirmation
	initEvent := map[string]interface{}{
		"type": "connection",
		"data": map[string]string{
			"message": "Connected to inbox updates",
		},
		"time": time.Now().Unix(),
	}

	initJSON, _ := json.Marshal(initEvent)
	fmt.Fprintf(c.Response(), "data: %s\n\n", initJSON)
	c.Response().Flush()

	for {
		select {
		case eventData, ok := <-clientChannel:
			if !ok {
				return nil
			}
			fmt.Fprintf(c.Response(), "data: %s\n\n", eventData)
			c.Response().Flush()
		case <-c.Request().Context().Done():
			// Client disconnected
			return nil
		}
	}
}

// GetPresence returns the current presence snapshot for polling clients.
func (h *StreamHandler) GetPresence(c echo.Context) error {
	return c.JSON(http.StatusOK, h.simulator.Snapshot(c.Request().Context()))
}

// MarkPresenceSeen resets the unread notification counter.
func (h *StreamHandler) MarkPresenceSeen(c echo.Context) error {
	h.simulator.MarkSeen()
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Notifications marked seen",
	})
}
