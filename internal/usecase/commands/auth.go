package commands

import (
	"context"

	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/pkg/password"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	OrganizerID uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	organizers queries.OrganizerReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(organizers queries.OrganizerReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		organizers: organizers,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	organizer, err := a.organizers.FindByEmail(ctx, email)
	if err != nil {
		// Lookup failures collapse into the same error as a password mismatch
		// so responses do not reveal which emails exist.
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(organizer.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(organizer.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{OrganizerID: organizer.ID, AccessToken: token}, nil
}
