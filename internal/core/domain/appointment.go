package domain

import "time"

// Appointment is a scheduled time slot for one practitioner. There is no
// status field; existence means scheduled. Times are full instants.
type Appointment struct {
	AppointmentID string    `json:"appointmentID"`
	UserID        string    `json:"userID"` // the practitioner
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	AuditFields
}
