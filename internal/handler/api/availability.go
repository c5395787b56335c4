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
)

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
	availabilityQueries  queries.AvailabilityQueries
	slotQueries          queries.SlotQueries
}

func NewAvailabilityHandler(
	availabilityCommands commands.AvailabilityCommands,
	availabilityQueries queries.AvailabilityQueries,
	slotQueries queries.SlotQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: availabilityCommands,
		availabilityQueries:  availabilityQueries,
		slotQueries:          slotQueries,
	}
}

// @Summary List available slots
// @Description List bookable slots for an event type on a calendar date
// @Tags availability
// @Produce json
// @Param slug path string true "Event type slug"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param timezone query string false "Invitee IANA timezone" default(UTC)
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/{slug}/{date} [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	slug := c.Param("slug")
	date := c.Param("date")
	tz := c.Query("timezone")

	view, err := h.slotQueries.ListForDate(c.Request.Context(), slug, date, tz)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event type not found",
			})
		case errors.Is(err, errs.ErrInvalidTimezone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid timezone",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotListView(view))
}

// @Summary Get availability
// @Description Get the authenticated organizer's schedule and weekly rules
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	organizerID, ok := middleware.GetOrganizerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.availabilityQueries.GetForOrganizer(c.Request.Context(), organizerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Update availability
// @Description Replace the organizer's schedule timezone and weekly rules
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateAvailabilityRequest true "Availability"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [put]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	organizerID, ok := middleware.GetOrganizerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.availabilityCommands.ReplaceSchedule(c.Request.Context(), organizerID, req.Timezone, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTimezone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid timezone",
			})
		case errors.Is(err, errs.ErrInvalidRule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability rule",
			})
		case errors.Is(err, errs.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.availabilityQueries.GetForOrganizer(c.Request.Context(), organizerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
