package eventtype

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("event type name is required")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidBuffer   = errors.New("buffers cannot be negative")
	ErrInvalidSlug     = errors.New("slug must be lowercase letters, digits and hyphens")
)

const DefaultColor = "#4F46E5"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !slugPattern.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

func (s Slug) String() string { return s.value }

// EventType describes a bookable meeting kind. Buffers pad existing bookings
// of this type when slots are offered; they are not re-applied at
// booking-acceptance time.
type EventType struct {
	id              uuid.UUID
	organizerID     uuid.UUID
	name            string
	description     string
	durationMinutes int
	slug            Slug
	color           string
	bufferBefore    int
	bufferAfter     int
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEventType(
	organizerID uuid.UUID,
	name, description string,
	durationMinutes int,
	slug Slug,
	color string,
	bufferBefore, bufferAfter int,
) (*EventType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if bufferBefore < 0 || bufferAfter < 0 {
		return nil, ErrInvalidBuffer
	}
	if color == "" {
		color = DefaultColor
	}

	return &EventType{
		id:              uuid.New(),
		organizerID:     organizerID,
		name:            name,
		description:     strings.TrimSpace(description),
		durationMinutes: durationMinutes,
		slug:            slug,
		color:           color,
		bufferBefore:    bufferBefore,
		bufferAfter:     bufferAfter,
		isActive:        true,
	}, nil
}

func Reconstruct(
	id, organizerID uuid.UUID,
	name, description string,
	durationMinutes int,
	slug Slug,
	color string,
	bufferBefore, bufferAfter int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *EventType {
	return &EventType{
		id:              id,
		organizerID:     organizerID,
		name:            name,
		description:     description,
		durationMinutes: durationMinutes,
		slug:            slug,
		color:           color,
		bufferBefore:    bufferBefore,
		bufferAfter:     bufferAfter,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (e *EventType) Duration() time.Duration {
	return time.Duration(e.durationMinutes) * time.Minute
}

func (e *EventType) BufferBeforeDuration() time.Duration {
	return time.Duration(e.bufferBefore) * time.Minute
}

func (e *EventType) BufferAfterDuration() time.Duration {
	return time.Duration(e.bufferAfter) * time.Minute
}

func (e *EventType) ID() uuid.UUID          { return e.id }
func (e *EventType) OrganizerID() uuid.UUID { return e.organizerID }
func (e *EventType) Name() string           { return e.name }
func (e *EventType) Description() string    { return e.description }
func (e *EventType) DurationMinutes() int   { return e.durationMinutes }
func (e *EventType) Slug() Slug             { return e.slug }
func (e *EventType) Color() string          { return e.color }
func (e *EventType) BufferBefore() int      { return e.bufferBefore }
func (e *EventType) BufferAfter() int       { return e.bufferAfter }
func (e *EventType) IsActive() bool         { return e.isActive }
func (e *EventType) CreatedAt() time.Time   { return e.createdAt }
func (e *EventType) UpdatedAt() time.Time   { return e.updatedAt }
