package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type EventTypeView struct {
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

func (v *EventTypeView) Duration() time.Duration {
	return time.Duration(v.DurationMinutes) * time.Minute
}

func (v *EventTypeView) BufferBeforeDuration() time.Duration {
	return time.Duration(v.BufferBefore) * time.Minute
}

func (v *EventTypeView) BufferAfterDuration() time.Duration {
	return time.Duration(v.BufferAfter) * time.Minute
}

type ScheduleView struct {
	ID          uuid.UUID `json:"id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	Timezone    string    `json:"timezone"`
	IsDefault   bool      `json:"is_default"`
}

type RuleView struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type AvailabilityView struct {
	Schedule ScheduleView `json:"schedule"`
	Rules    []RuleView   `json:"rules"`
}

type SlotView struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Display string    `json:"display"`
}

type SlotListView struct {
	Slots             []SlotView `json:"slots"`
	OrganizerTimezone string     `json:"organizer_timezone"`
	InviteeTimezone   string     `json:"invitee_timezone"`
}

type BookingView struct {
	ID                 uuid.UUID `json:"id"`
	EventTypeID        uuid.UUID `json:"event_type_id"`
	OrganizerID        uuid.UUID `json:"organizer_id"`
	InviteeName        string    `json:"invitee_name"`
	InviteeEmail       string    `json:"invitee_email"`
	InviteeTimezone    string    `json:"invitee_timezone"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	CancellationReason *string   `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type BookingListItem struct {
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

type BookingListView struct {
	OrganizerTimezone string             `json:"organizer_timezone"`
	Meetings          []*BookingListItem `json:"meetings"`
}

// BookedRange is the minimal shape the slot generator needs from an existing
// booking: its UTC interval.
type BookedRange struct {
	Start time.Time
	End   time.Time
}

type OrganizerView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
}

// Read-side store ports implemented by internal/infra/readstore.
type EventTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventTypeView, error)
	FindActiveBySlug(ctx context.Context, slug string) (*EventTypeView, error)
	ListActive(ctx context.Context) ([]*EventTypeView, error)
}

type AvailabilityReadStore interface {
	DefaultScheduleByOrganizer(ctx context.Context, organizerID uuid.UUID) (*ScheduleView, error)
	RulesBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]*RuleView, error)
	SchedulesForEventType(ctx context.Context, eventTypeID uuid.UUID) ([]*ScheduleView, error)
	RulesForEventType(ctx context.Context, eventTypeID uuid.UUID) ([]*RuleView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ConfirmedStartingIn returns UTC ranges of confirmed bookings whose start
	// falls in [from, to), across all of the organizer's active event types.
	ConfirmedStartingIn(ctx context.Context, organizerID uuid.UUID, from, to time.Time) ([]BookedRange, error)
	ListUpcoming(ctx context.Context, organizerID uuid.UUID, now time.Time) ([]*BookingListItem, error)
	ListPast(ctx context.Context, organizerID uuid.UUID, now time.Time) ([]*BookingListItem, error)
}

type OrganizerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrganizerView, error)
	FindByEmail(ctx context.Context, email string) (*OrganizerView, error)
}
