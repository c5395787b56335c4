package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventTypeHandler struct {
	eventTypeCommands commands.EventTypeCommands
	eventTypeQueries  queries.EventTypeQueries
}

func NewEventTypeHandler(
	eventTypeCommands commands.EventTypeCommands,
	eventTypeQueries queries.EventTypeQueries,
) *EventTypeHandler {
	return &EventTypeHandler{
		eventTypeCommands: eventTypeCommands,
		eventTypeQueries:  eventTypeQueries,
	}
}

// @Summary List event types
// @Description List all active event types
// @Tags event-types
// @Produce json
// @Success 200 {array} resdto.EventTypeResponse
// @Router /event-types [get]
func (h *EventTypeHandler) List(c *gin.Context) {
	views, err := h.eventTypeQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventTypeViews(views))
}

// @Summary Get event type
// @Description Get an active event type by slug
// @Tags event-types
// @Produce json
// @Param slug path string true "Event type slug"
// @Success 200 {object} resdto.EventTypeResponse
// @Failure 404 {object} map[string]string
// @Router /event-types/{slug} [get]
func (h *EventTypeHandler) GetBySlug(c *gin.Context) {
	view, err := h.eventTypeQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventTypeView(view))
}

// @Summary Create event type
// @Description Create a new event type for the authenticated organizer
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EventTypeRequest true "Event type"
// @Success 201 {object} resdto.EventTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /event-types [post]
func (h *EventTypeHandler) Create(c *gin.Context) {
	organizerID, ok := middleware.GetOrganizerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.EventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventTypeCommands.Create(c.Request.Context(), organizerID, req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventTypeView(view))
}

// @Summary Update event type
// @Description Update an event type owned by the authenticated organizer
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Param request body reqdto.EventTypeRequest true "Event type"
// @Success 200 {object} resdto.EventTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /event-types/{id} [put]
func (h *EventTypeHandler) Update(c *gin.Context) {
	organizerID, ok := middleware.GetOrganizerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event type ID format",
		})
		return
	}

	var req reqdto.EventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventTypeCommands.Update(c.Request.Context(), organizerID, id, req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventTypeView(view))
}

// @Summary Delete event type
// @Description Deactivate an event type owned by the authenticated organizer
// @Tags event-types
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /event-types/{id} [delete]
func (h *EventTypeHandler) Delete(c *gin.Context) {
	organizerID, ok := middleware.GetOrganizerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event type ID format",
		})
		return
	}

	if err := h.eventTypeCommands.Delete(c.Request.Context(), organizerID, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EventTypeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrEventTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event type not found",
		})
	case errors.Is(err, errs.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slug already in use",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event type data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
