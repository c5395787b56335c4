package organizer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyName    = errors.New("organizer name is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Organizer is the calendar owner. Every schedule, event type and booking
// hangs off an organizer ID; nothing assumes a single global owner.
type Organizer struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOrganizer(name string, email Email, passwordHash string) (*Organizer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Organizer{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, email Email, passwordHash string, createdAt, updatedAt time.Time) *Organizer {
	return &Organizer{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Organizer) ID() uuid.UUID        { return o.id }
func (o *Organizer) Name() string         { return o.name }
func (o *Organizer) Email() Email         { return o.email }
func (o *Organizer) PasswordHash() string { return o.passwordHash }
func (o *Organizer) CreatedAt() time.Time { return o.createdAt }
func (o *Organizer) UpdatedAt() time.Time { return o.updatedAt }
