package booking

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"slotbook/internal/pkg/timezone"
)

var (
	ErrInvalidTimeSlot   = errors.New("start time must be before end time")
	ErrEmptyInviteeName  = errors.New("invitee name is required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidTimezone   = errors.New("invalid invitee timezone")
)

// TimeSlot is a half-open [start, end) interval. Instants are normalized to
// UTC on construction; UTC is the single representation used for ordering,
// overlap and past checks.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

// ReconstructTimeSlot rebuilds a slot from stored values without revalidating.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start.UTC(), end: end.UTC()}
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports strict half-open overlap: slots that merely touch at an
// endpoint do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Invitee identifies who booked the slot and which zone their confirmation
// should be rendered in.
type Invitee struct {
	name     string
	email    string
	timezone string
}

func NewInvitee(name, email, tz string) (Invitee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Invitee{}, ErrEmptyInviteeName
	}

	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Invitee{}, ErrInvalidEmail
	}

	if _, err := timezone.LoadLocation(tz); err != nil {
		return Invitee{}, ErrInvalidTimezone
	}

	return Invitee{name: name, email: email, timezone: tz}, nil
}

// ReconstructInvitee rebuilds an invitee from stored values without
// revalidating.
func ReconstructInvitee(name, email, tz string) Invitee {
	return Invitee{name: name, email: email, timezone: tz}
}

func (i Invitee) Name() string     { return i.name }
func (i Invitee) Email() string    { return i.email }
func (i Invitee) Timezone() string { return i.timezone }
