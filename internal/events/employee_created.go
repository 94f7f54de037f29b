package events

import "time"

const EmployeeCreatedTopic = "talent.employee.lifecycle.v1"

const EmployeeCreatedType = "employee_created"

type EmployeeCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	Name        string    `json:"name"`
	Affiliation string    `json:"affiliation"`
	Post        string    `json:"post"`
	OccurredAt  time.Time `json:"occurred_at"`
}
