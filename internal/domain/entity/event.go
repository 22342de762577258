package entity

import "time"

// Event types published by the scheduling server.
const (
	EventInterview   = "interview"
	EventRescheduled = "rescheduled-interview"
	EventFwd         = "fwd"
)

// Event is a single reminder published on the delivery channel. Interview
// events carry Start; fwd (start-of-work) events carry EmploymentDate.
type Event struct {
	Type           string    `json:"type"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Start          time.Time `json:"start,omitempty"`
	EmploymentDate string    `json:"employment_date,omitempty"` // YYYY-MM-DD
}
