package interfaces

import (
	"context"

	"foampro/internal/domain/entities"
)

// IBillingPaymentRepository persists payments recorded against invoices.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.BillingPayment, error)
}
