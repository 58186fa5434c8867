// Package emailservice delivers documents and account emails through the
// hosted email script.
package emailservice

import (
	"context"
	"errors"
	"strings"

	"foampro/internal/adapter/appscript"
	"foampro/internal/usecase/interfaces"
)

const (
	ActionSendDocument        = "SEND_DOCUMENT"
	ActionSendWelcome         = "SEND_WELCOME"
	ActionSendAccountCreation = "SEND_ACCOUNT_CREATION"
)

var (
	ErrMissingRecipient  = errors.New("recipient email is required")
	ErrMissingAttachment = errors.New("document attachment is missing")
)

type Sender struct {
	client *appscript.Client
}

var _ interfaces.IEmailSender = (*Sender)(nil)

func New(client *appscript.Client) *Sender {
	return &Sender{client: client}
}

func (s *Sender) SendDocument(ctx context.Context, msg interfaces.DocumentEmail) error {
	if strings.TrimSpace(msg.To) == "" {
		return ErrMissingRecipient
	}
	if msg.AttachmentBase64 == "" {
		return ErrMissingAttachment
	}
	return s.client.Call(ctx, ActionSendDocument, map[string]string{
		"to":               msg.To,
		"subject":          msg.Subject,
		"body":             msg.Body,
		"attachmentBase64": msg.AttachmentBase64,
		"filename":         msg.FileName,
	}, nil)
}

func (s *Sender) SendWelcome(ctx context.Context, to, name string) error {
	if strings.TrimSpace(to) == "" {
		return ErrMissingRecipient
	}
	return s.client.Call(ctx, ActionSendWelcome, map[string]string{
		"to":           to,
		"customerName": name,
	}, nil)
}

func (s *Sender) SendAccountCreation(ctx context.Context, msg interfaces.AccountCreationEmail) error {
	if strings.TrimSpace(msg.To) == "" {
		return ErrMissingRecipient
	}
	return s.client.Call(ctx, ActionSendAccountCreation, map[string]string{
		"to":          msg.To,
		"companyName": msg.CompanyName,
		"username":    msg.Username,
		"password":    msg.Password,
		"crewPin":     msg.CrewPin,
	}, nil)
}
