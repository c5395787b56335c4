package request

import (
	"time"

	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventTypeID     uuid.UUID `json:"event_type_id" binding:"required"`
	InviteeName     string    `json:"invitee_name" binding:"required"`
	InviteeEmail    string    `json:"invitee_email" binding:"required,email"`
	InviteeTimezone string    `json:"invitee_timezone" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	EndTime         time.Time `json:"end_time" binding:"required"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		EventTypeID:     r.EventTypeID,
		InviteeName:     r.InviteeName,
		InviteeEmail:    r.InviteeEmail,
		InviteeTimezone: r.InviteeTimezone,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}
