package models

// IncidentLog is a dated incident record. LogID is server-assigned.
type IncidentLog struct {
	LogID       string `json:"logId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// IncidentLogDraft is the client-owned part of an IncidentLog, used as the
// body of create and whole-record update calls.
type IncidentLogDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Draft returns the mutable fields of the record, for seeding an edit form.
func (l IncidentLog) Draft() IncidentLogDraft {
	return IncidentLogDraft{
		Title:       l.Title,
		Description: l.Description,
		Date:        l.Date,
	}
}
