package router

import (
	"net/http"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/handler"

	"github.com/labstack/echo/v4"
)

func SetupRoutes(
	e *echo.Echo,
	inboxHandler *handler.InboxHandler,
	scheduleHandler *handler.ScheduleHandler,
	streamHandler *handler.StreamHandler,
) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")

	// Inbox routes
	api.GET("/emails", inboxHandler.ListEmails)
	api.GET("/emails/stats", inboxHandler.GetStats)
	api.GET("/emails/unread-count", inboxHandler.GetUnreadCount)
	api.POST("/emails/refresh", inboxHandler.RefreshEmails)
	api.GET("/emails/:id", inboxHandler.SelectEmail)
	api.POST("/emails/:id/toggle", inboxHandler.ToggleEmail)

	// Scheduler routes
	api.POST("/schedule", scheduleHandler.CreateSchedule)
	api.GET("/schedule", scheduleHandler.ListPending)
	api.GET("/schedule/pending-count", scheduleHandler.GetPendingCount)
	api.GET("/schedule/insights", scheduleHandler.GetInsights)
	api.DELETE("/schedule/:id", scheduleHandler.CancelSchedule)

	// Presence routes
	api.GET("/presence", streamHandler.GetPresence)
	api.POST("/presence/seen", streamHandler.MarkPresenceSeen)

	// Real-time updates via Server-Sent Events (SSE)
	api.GET("/sse", streamHandler.StreamEvents)
}
