// Package scriptbackend is the spreadsheet and file-storage backend reached
// through a hosted script web app.
package scriptbackend

import (
	"context"
	"errors"
	"strings"

	"foampro/internal/adapter/appscript"
	"foampro/internal/domain/entities"
	"foampro/internal/usecase/interfaces"
)

const (
	ActionSyncDown     = "SYNC_DOWN"
	ActionSaveEstimate = "SAVE_ESTIMATE"
	ActionLogTime      = "LOG_TIME"
	ActionStartJob     = "START_JOB"
	ActionCompleteJob  = "COMPLETE_JOB"
	ActionUploadImage  = "UPLOAD_IMAGE"
)

var ErrMissingImageURL = errors.New("upload returned no url")

type Backend struct {
	client        *appscript.Client
	spreadsheetID string
	folderID      string
}

var _ interfaces.IFieldBackend = (*Backend)(nil)

func New(client *appscript.Client, spreadsheetID, folderID string) *Backend {
	return &Backend{client: client, spreadsheetID: spreadsheetID, folderID: folderID}
}

func (b *Backend) FetchAll(ctx context.Context) (interfaces.RemoteSnapshot, error) {
	var snap interfaces.RemoteSnapshot
	err := b.client.Call(ctx, ActionSyncDown, map[string]any{"spreadsheetId": b.spreadsheetID}, &snap)
	return snap, err
}

func (b *Backend) SaveEstimate(ctx context.Context, rec entities.EstimateRecord) error {
	return b.client.Call(ctx, ActionSaveEstimate, map[string]any{
		"spreadsheetId": b.spreadsheetID,
		"estimate":      rec,
	}, nil)
}

func (b *Backend) LogCrewTime(ctx context.Context, entry interfaces.CrewTimeLog) error {
	return b.client.Call(ctx, ActionLogTime, map[string]any{
		"spreadsheetId": b.spreadsheetID,
		"workOrderId":   entry.JobID,
		"startTime":     entry.Start,
		"endTime":       entry.End,
		"user":          entry.User,
	}, nil)
}

func (b *Backend) StartJob(ctx context.Context, jobID string) error {
	return b.client.Call(ctx, ActionStartJob, map[string]any{
		"spreadsheetId": b.spreadsheetID,
		"estimateId":    jobID,
	}, nil)
}

func (b *Backend) CompleteJob(ctx context.Context, jobID string, actuals entities.Actuals) error {
	return b.client.Call(ctx, ActionCompleteJob, map[string]any{
		"spreadsheetId": b.spreadsheetID,
		"estimateId":    jobID,
		"actuals":       actuals,
	}, nil)
}

// UploadImage stores a base64 image (data URI prefix allowed) in the job
// folder and returns its public url.
func (b *Backend) UploadImage(ctx context.Context, base64Data, fileName string) (string, error) {
	if i := strings.Index(base64Data, ","); strings.HasPrefix(base64Data, "data:") && i >= 0 {
		base64Data = base64Data[i+1:]
	}
	var out struct {
		URL string `json:"url"`
	}
	err := b.client.Call(ctx, ActionUploadImage, map[string]any{
		"folderId":   b.folderID,
		"base64Data": base64Data,
		"fileName":   fileName,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", ErrMissingImageURL
	}
	return out.URL, nil
}
