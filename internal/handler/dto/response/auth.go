package response

import (
	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	Organizer   OrganizerResponse `json:"organizer"`
}

type OrganizerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
