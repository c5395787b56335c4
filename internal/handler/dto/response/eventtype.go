package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventTypeResponse struct {
	ID              uuid.UUID `json:"id"`
	OrganizerID     uuid.UUID `json:"organizer_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Slug            string    `json:"slug"`
	Color           string    `json:"color"`
	BufferBefore    int       `json:"buffer_before"`
	BufferAfter     int       `json:"buffer_after"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromEventTypeView(v *queries.EventTypeView) *EventTypeResponse {
	var resp EventTypeResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromEventTypeViews(views []*queries.EventTypeView) []*EventTypeResponse {
	resps := make([]*EventTypeResponse, len(views))
	for i, v := range views {
		resps[i] = FromEventTypeView(v)
	}
	return resps
}
