package usecase

import (
	"context"
	"errors"
	"testing"

	"foampro/internal/usecase/interfaces"
	mock_interfaces "foampro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAccountUseCase_NotifyAccountCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("fills company defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewAccountUseCase(email, "Foam Co", "4321")

		email.EXPECT().SendAccountCreation(gomock.Any(), interfaces.AccountCreationEmail{
			To:          "owner@foam.co",
			CompanyName: "Foam Co",
			Username:    "owner",
			Password:    "temp-pass",
			CrewPin:     "4321",
		}).Return(nil)

		err := uc.NotifyAccountCreated(ctx, interfaces.AccountCreationEmail{To: " owner@foam.co ", Username: "owner", Password: "temp-pass"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("send failure is external", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewAccountUseCase(email, "Foam Co", "")

		email.EXPECT().SendAccountCreation(gomock.Any(), gomock.Any()).Return(errors.New("quota"))

		err := uc.NotifyAccountCreated(ctx, interfaces.AccountCreationEmail{To: "a@b.c", Username: "a"})
		var ext *ExternalError
		if !errors.As(err, &ext) || ext.Service != "email service" {
			t.Fatalf("expected external error, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewAccountUseCase(nil, "", "")
		if err := uc.NotifyAccountCreated(ctx, interfaces.AccountCreationEmail{Username: "a"}); !errors.Is(err, ErrInvalidAccountEmail) {
			t.Fatalf("expected invalid account email, got %v", err)
		}
		if err := uc.NotifyAccountCreated(ctx, interfaces.AccountCreationEmail{To: "a@b.c", Username: "a"}); !errors.Is(err, interfaces.ErrCollaboratorNotConfigured) {
			t.Fatalf("expected not configured, got %v", err)
		}
	})
}
