package events

import (
	"encoding/json"
	"time"
)

// Mutation event types published by the API handlers.
const (
	CompanyCreated = "company_created"
	CompanyUpdated = "company_updated"
	CompanyDeleted = "company_deleted"
	JobCreated     = "job_created"
	JobUpdated     = "job_updated"
	JobDeleted     = "job_deleted"
	SectionCreated = "section_created"
	SectionUpdated = "section_updated"
	SectionDeleted = "section_deleted"
	SectionsMoved  = "sections_reordered"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
