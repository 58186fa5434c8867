package interfaces

import "context"

type DocumentEmail struct {
	To               string
	Subject          string
	Body             string
	AttachmentBase64 string
	FileName         string
}

type AccountCreationEmail struct {
	To          string
	CompanyName string
	Username    string
	Password    string
	CrewPin     string
}

// IEmailSender delivers templated emails through the email service.
type IEmailSender interface {
	SendDocument(ctx context.Context, msg DocumentEmail) error
	SendWelcome(ctx context.Context, to, name string) error
	SendAccountCreation(ctx context.Context, msg AccountCreationEmail) error
}
