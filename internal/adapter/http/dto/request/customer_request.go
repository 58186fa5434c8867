package request

import "foampro/internal/domain/entities"

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

func (r CustomerRequest) Profile(id string) entities.CustomerProfile {
	return entities.CustomerProfile{
		ID:      id,
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Zip:     r.Zip,
		Email:   r.Email,
		Phone:   r.Phone,
		Notes:   r.Notes,
	}
}

type LogEntryRequest struct {
	Type    entities.LogEntryType `json:"type"`
	Content string                `json:"content" binding:"required"`
	Date    string                `json:"date"`
	User    string                `json:"user"`
}

func (r LogEntryRequest) Entry() entities.CommunicationLogEntry {
	return entities.CommunicationLogEntry{Type: r.Type, Content: r.Content, Date: r.Date, User: r.User}
}
