package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"foampro/internal/usecase/interfaces"
)

var ErrInvalidAccountEmail = errors.New("account email and username required")

// IAccountUseCase sends the onboarding email after an account is created by
// the authentication provider.
type IAccountUseCase interface {
	NotifyAccountCreated(ctx context.Context, msg interfaces.AccountCreationEmail) error
}

type AccountUseCase struct {
	email   interfaces.IEmailSender
	company string
	crewPin string
	log     *slog.Logger
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

// NewAccountUseCase uses company and crewPin when the request leaves them
// empty.
func NewAccountUseCase(email interfaces.IEmailSender, company, crewPin string) *AccountUseCase {
	return &AccountUseCase{
		email:   email,
		company: company,
		crewPin: crewPin,
		log:     slog.Default().With("component", "account"),
	}
}

func (u *AccountUseCase) NotifyAccountCreated(ctx context.Context, msg interfaces.AccountCreationEmail) error {
	msg.To = strings.TrimSpace(msg.To)
	msg.Username = strings.TrimSpace(msg.Username)
	if msg.To == "" || msg.Username == "" {
		return ErrInvalidAccountEmail
	}
	if msg.CompanyName == "" {
		msg.CompanyName = u.company
	}
	if msg.CrewPin == "" {
		msg.CrewPin = u.crewPin
	}
	if u.email == nil {
		return external("email service", interfaces.ErrCollaboratorNotConfigured)
	}
	if err := u.email.SendAccountCreation(ctx, msg); err != nil {
		u.log.Warn("account email failed", "username", msg.Username, "err", err)
		return external("email service", err)
	}
	u.log.Info("account email sent", "username", msg.Username)
	return nil
}
