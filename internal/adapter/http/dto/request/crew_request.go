package request

import (
	"strings"

	"foampro/internal/domain/entities"
	"foampro/internal/usecase"
)

// CrewRequest identifies the crew member acting on a job.
type CrewRequest struct {
	User string `json:"user" binding:"required"`
}

// StopTimerRequest stops the clock; Complete opens the completion form.
type StopTimerRequest struct {
	User     string `json:"user" binding:"required"`
	Complete bool   `json:"complete"`
}

type CompleteJobRequest struct {
	User    string           `json:"user" binding:"required"`
	Actuals entities.Actuals `json:"actuals"`
}

type PhotoRequest struct {
	User       string             `json:"user" binding:"required"`
	Base64Data string             `json:"base64Data" binding:"required"`
	FileName   string             `json:"fileName"`
	Type       entities.ImageKind `json:"type"`
	Caption    string             `json:"caption"`
}

func (r PhotoRequest) Upload() usecase.PhotoUpload {
	return usecase.PhotoUpload{
		Base64Data: r.Base64Data,
		FileName:   strings.TrimSpace(r.FileName),
		Kind:       r.Type,
		Caption:    strings.TrimSpace(r.Caption),
	}
}
