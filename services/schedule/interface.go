package schedule

import (
	"context"
	"time"

	"regenmed/models"

	"golang.org/x/oauth2"
)

// Service sequences the calendar-creation and confirmation-email calls as
// one logical booking operation.
type Service interface {
	Schedule(ctx context.Context, sess *models.Session, req models.ScheduleRequest) (*models.ScheduleOutcome, error)
}

// ClientFactory builds short-lived provider clients from a session's token
// bundle. Clients are per-request values; nothing is cached across requests,
// so a revoked credential fails on the very next call.
type ClientFactory interface {
	Clients(ctx context.Context, tokens *oauth2.Token) (CalendarClient, MailClient, error)
}

// CalendarClient creates events on the authorized account's calendar.
type CalendarClient interface {
	CreateEvent(ctx context.Context, in EventInput) (*CreatedEvent, error)
}

// MailClient sends mail as the authorized account.
type MailClient interface {
	Send(ctx context.Context, msg MailMessage) (string, error)
}

// EventInput describes a consultation event to create.
type EventInput struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	Reminders     []Reminder
}

// Reminder is a calendar reminder override.
type Reminder struct {
	Method  string
	Minutes int64
}

// CreatedEvent holds the identifiers the calendar provider returns.
type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// MailMessage is a plaintext message sent from the authorized account.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}
