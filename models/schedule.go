package models

import "time"

// ScheduleRequest is the body of POST /api/schedule. Name, Email and
// DateTime are required; Phone is optional.
type ScheduleRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	DateTime string `json:"dateTime"`
}

// AppointmentWindow is the computed event span. End is always Start plus
// the configured consultation duration.
type AppointmentWindow struct {
	Start time.Time
	End   time.Time
}

// ScheduleOutcome carries the provider identifiers of a completed booking.
type ScheduleOutcome struct {
	EventID   string `json:"eventId"`
	EventLink string `json:"eventLink"`
	MessageID string `json:"messageId"`
}
