package interfaces

import (
	"context"
	"time"

	"foampro/internal/domain/entities"
)

// RemoteSnapshot is everything the hosted backend returns on a full fetch.
type RemoteSnapshot struct {
	Customers []entities.CustomerProfile `json:"customers"`
	Estimates []entities.EstimateRecord  `json:"estimates"`
	Warehouse []entities.WarehouseItem   `json:"warehouse"`
	Equipment []entities.EquipmentItem   `json:"equipment"`
}

// CrewTimeLog is one finished job clock.
type CrewTimeLog struct {
	JobID string    `json:"workOrderId"`
	Start time.Time `json:"startTime"`
	End   time.Time `json:"endTime"`
	User  string    `json:"user"`
}

// IFieldBackend is the hosted spreadsheet/file-storage backend. Every call is
// a network round trip; StartJob and UploadImage are safe to repeat.
type IFieldBackend interface {
	FetchAll(ctx context.Context) (RemoteSnapshot, error)
	SaveEstimate(ctx context.Context, rec entities.EstimateRecord) error
	LogCrewTime(ctx context.Context, entry CrewTimeLog) error
	StartJob(ctx context.Context, jobID string) error
	CompleteJob(ctx context.Context, jobID string, actuals entities.Actuals) error
	UploadImage(ctx context.Context, base64Data, fileName string) (string, error)
}
