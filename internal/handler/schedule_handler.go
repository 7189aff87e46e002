package handler

import (
	"net/http"
	"time"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/service"

	"github.com/labstack/echo/v4"
)

type ScheduleHandler struct {
	scheduler service.SchedulerService
	logger    echo.Logger
}

func NewScheduleHandler(scheduler service.SchedulerService, logger echo.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduler: scheduler,
		logger:    logger,
	}
}

// CreateSchedule queues an outbound email for future delivery.
func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	var req struct {
		To      string    `json:"to"`
		Subject string    `json:"subject"`
		Content string    `json:"content"`
		Date    time.Time `json:"date"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	entry, err := h.scheduler.Schedule(c.Request().Context(), req.To, req.Subject, req.Content, req.Date)
	if err != nil {
		return writeServiceError(c, h.logger, "Failed to schedule email", err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// ListPending returns the scheduler's pending queue in insertion order.
func (h *ScheduleHandler) ListPending(c echo.Context) error {
	pending, err := h.scheduler.Pending(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list pending schedules:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to list pending schedules",
		})
	}

	return c.JSON(http.StatusOK, pending)
}

// GetPendingCount returns the pending queue depth.
func (h *ScheduleHandler) GetPendingCount(c echo.Context) error {
	count, err := h.scheduler.PendingCount(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to count pending schedules:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to count pending schedules",
		})
	}

	return c.JSON(http.StatusOK, map[string]int{"pending": count})
}

// CancelSchedule removes a still-pending entry. A tick may already have
// delivered it, in which case this reports 404.
func (h *ScheduleHandler) CancelSchedule(c echo.Context) error {
	if err := h.scheduler.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return writeServiceError(c, h.logger, "Failed to cancel schedule", err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Schedule cancelled",
	})
}

// scheduleInsights is static sample data for the dashboard's missed-deadline
// and rescheduled panels. It is illustrative only and is not derived from
// the scheduler's history.
var scheduleInsights = map[string]interface{}{
	"missed_deadlines": []map[string]string{
		{"subject": "Quarterly usage review", "due": "2 days ago", "owner": "samira"},
		{"subject": "Onboarding follow-up for Brightline", "due": "yesterday", "owner": "devon"},
	},
	"rescheduled": []map[string]string{
		{"subject": "Renewal quote for VendorHub", "from": "Mon 09:00", "to": "Wed 14:00"},
		{"subject": "Escalation call: sync job failures", "from": "Tue 11:00", "to": "Thu 10:30"},
		{"subject": "CSAT survey reminder", "from": "Fri 16:00", "to": "Mon 09:30"},
	},
}

// GetInsights serves the illustrative panel dataset.
func (h *ScheduleHandler) GetInsights(c echo.Context) error {
	return c.JSON(http.StatusOK, scheduleInsights)
}
