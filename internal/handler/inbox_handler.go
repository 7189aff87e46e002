package handler

import (
	"errors"
	"net/http"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/model"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/repository"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/service"

	"github.com/labstack/echo/v4"
)

type InboxHandler struct {
	inboxService service.InboxService
	refreshCount int
	logger       echo.Logger
}

func NewInboxHandler(inboxService service.InboxService, refreshCount int, logger echo.Logger) *InboxHandler {
	return &InboxHandler{
		inboxService: inboxService,
		refreshCount: refreshCount,
		logger:       logger,
	}
}

// ListEmails returns the filtered inbox view for the current filter mode and
// search query.
func (h *InboxHandler) ListEmails(c echo.Context) error {
	mode, ok := model.ParseFilterMode(c.QueryParam("filter"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "filter must be one of all, unread, starred, resolved",
		})
	}

	emails, err := h.inboxService.List(c.Request().Context(), mode, c.QueryParam("q"))
	if err != nil {
		h.logger.Error("Failed to list emails:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to list emails",
		})
	}

	return c.JSON(http.StatusOK, emails)
}

// SelectEmail opens an email for display. Opening an unread email marks it
// read; that coupling lives in the service, not the client.
func (h *InboxHandler) SelectEmail(c echo.Context) error {
	email, err := h.inboxService.Select(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeServiceError(c, h.logger, "Failed to select email", err)
	}

	return c.JSON(http.StatusOK, email)
}

// ToggleEmail flips one of the read/resolved/starred flags.
func (h *InboxHandler) ToggleEmail(c echo.Context) error {
	var req struct {
		Field string `json:"field"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	field, ok := model.ParseToggleField(req.Field)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "field must be one of read, resolved, starred",
		})
	}

	email, err := h.inboxService.Toggle(c.Request().Context(), c.Param("id"), field)
	if err != nil {
		return writeServiceError(c, h.logger, "Failed to toggle email", err)
	}

	return c.JSON(http.StatusOK, email)
}

// GetStats returns sentiment counts recomputed from the current inbox.
func (h *InboxHandler) GetStats(c echo.Context) error {
	stats, err := h.inboxService.Stats(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to compute stats:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to compute stats",
		})
	}

	return c.JSON(http.StatusOK, stats)
}

// GetUnreadCount returns the number of unread emails.
func (h *InboxHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.inboxService.UnreadCount(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to count unread emails:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to count unread emails",
		})
	}

	return c.JSON(http.StatusOK, map[string]int{"unread": count})
}

// RefreshEmails appends a batch of newly generated synthetic emails.
func (h *InboxHandler) RefreshEmails(c echo.Context) error {
	var req struct {
		Count int `json:"count"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if req.Count == 0 {
		req.Count = h.refreshCount
	}

	emails, err := h.inboxService.Refresh(c.Request().Context(), req.Count)
	if err != nil {
		return writeServiceError(c, h.logger, "Failed to refresh inbox", err)
	}

	return c.JSON(http.StatusOK, emails)
}

// writeServiceError maps the engine's error taxonomy onto HTTP statuses:
// validation 400, unknown id 404, id collision 409, anything else 500.
func writeServiceError(c echo.Context, logger echo.Logger, message string, err error) error {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": validationErr.Error(),
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Not found",
		})
	case errors.Is(err, repository.ErrDuplicateID):
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "Duplicate id",
		})
	default:
		logger.Error(message+":", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": message,
		})
	}
}
