package entities

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusArchived CustomerStatus = "Archived"
)

type LogEntryType string

const (
	LogEntryCall    LogEntryType = "Call"
	LogEntryNote    LogEntryType = "Note"
	LogEntryEmail   LogEntryType = "Email"
	LogEntryMeeting LogEntryType = "Meeting"
)

// CommunicationLogEntry is an append-only CRM activity line.
type CommunicationLogEntry struct {
	ID      string       `json:"id"`
	Date    string       `json:"date"`
	Type    LogEntryType `json:"type"`
	Content string       `json:"content"`
	User    string       `json:"user,omitempty"`
}

// CustomerProfile is the CRM entity. Estimate records keep their own copy of it.
type CustomerProfile struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Address   string                  `json:"address"`
	City      string                  `json:"city"`
	State     string                  `json:"state"`
	Zip       string                  `json:"zip"`
	Email     string                  `json:"email"`
	Phone     string                  `json:"phone"`
	Notes     string                  `json:"notes,omitempty"`
	Logs      []CommunicationLogEntry `json:"logs,omitempty"`
	Status    CustomerStatus          `json:"status,omitempty"`
	CreatedAt string                  `json:"createdAt,omitempty"`
	Version   int64                   `json:"version,omitempty"`
}

type CompanyProfile struct {
	CompanyName   string `json:"companyName"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	CrewAccessPin string `json:"crewAccessPin,omitempty"`
}
