package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	EventTypeID        uuid.UUID `json:"event_type_id"`
	InviteeName        string    `json:"invitee_name"`
	InviteeEmail       string    `json:"invitee_email"`
	InviteeTimezone    string    `json:"invitee_timezone"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	CancellationReason *string   `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type MeetingResponse struct {
	ID                 uuid.UUID `json:"id"`
	EventName          string    `json:"event_name"`
	DurationMinutes    int       `json:"duration_minutes"`
	Color              string    `json:"color"`
	InviteeName        string    `json:"invitee_name"`
	InviteeEmail       string    `json:"invitee_email"`
	InviteeTimezone    string    `json:"invitee_timezone"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	CancellationReason *string   `json:"cancellation_reason,omitempty"`
}

type MeetingListResponse struct {
	OrganizerTimezone string             `json:"organizer_timezone"`
	Meetings          []*MeetingResponse `json:"meetings"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingListView(v *queries.BookingListView) *MeetingListResponse {
	meetings := make([]*MeetingResponse, len(v.Meetings))
	for i, item := range v.Meetings {
		var resp MeetingResponse
		_ = copier.Copy(&resp, item)
		meetings[i] = &resp
	}
	return &MeetingListResponse{
		OrganizerTimezone: v.OrganizerTimezone,
		Meetings:          meetings,
	}
}
