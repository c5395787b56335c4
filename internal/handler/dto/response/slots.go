package response

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type SlotResponse struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Display string    `json:"display"`
}

type SlotListResponse struct {
	Slots             []SlotResponse `json:"slots"`
	OrganizerTimezone string         `json:"organizer_timezone"`
	InviteeTimezone   string         `json:"invitee_timezone"`
}

func FromSlotListView(v *queries.SlotListView) *SlotListResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{Start: s.Start, End: s.End, Display: s.Display}
	}
	return &SlotListResponse{
		Slots:             slots,
		OrganizerTimezone: v.OrganizerTimezone,
		InviteeTimezone:   v.InviteeTimezone,
	}
}
