package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"regenmed/models"
	"regenmed/utils"

	"go.uber.org/zap"
)

const brand = "regenmed.ai"

// DefaultSlotDuration is the fixed consultation length.
const DefaultSlotDuration = 30 * time.Minute

// DefaultReminders are the event reminder overrides: an email a day ahead
// and a popup 30 minutes before.
var DefaultReminders = []Reminder{
	{Method: "email", Minutes: 24 * 60},
	{Method: "popup", Minutes: 30},
}

// Layouts accepted for the dateTime field, tried in order. The widget sends
// RFC 3339; the fallbacks cover hand-typed values.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DefaultSchedulerService validates a schedule request and runs the
// calendar-then-email sequence against the session's authorized account.
type DefaultSchedulerService struct {
	Clients      ClientFactory
	SlotDuration time.Duration
}

// Schedule fails fast at the first unmet gate: authorization, then field
// presence, then time parsing, then each provider call in order. Each
// provider call is attempted exactly once. An email failure after a
// successful calendar insert is still an overall failure; the event is not
// rolled back.
func (s *DefaultSchedulerService) Schedule(ctx context.Context, sess *models.Session, req models.ScheduleRequest) (*models.ScheduleOutcome, error) {
	logger := utils.GetLogger()

	// The authorization gate runs before any field validation: without a
	// credential there is no account to act on.
	if !sess.Authenticated() {
		return nil, NewUnauthorizedError()
	}

	if req.Name == "" || req.Email == "" || req.DateTime == "" {
		return nil, NewInvalidRequestError("Missing required scheduling information (name, email, dateTime).")
	}

	window, err := parseWindow(req.DateTime, s.slotDuration())
	if err != nil {
		logger.Warn("Failed to parse dateTime", zap.String("dateTime", req.DateTime), zap.Error(err))
		return nil, NewInvalidRequestError("Invalid dateTime format provided. Please use a standard format (e.g., ISO 8601).")
	}

	calendarClient, mailClient, err := s.Clients.Clients(ctx, sess.Tokens)
	if err != nil {
		logger.Error("Failed to build authorized Google clients", zap.Error(err))
		return nil, NewUpstreamError("authorization", err)
	}

	created, err := calendarClient.CreateEvent(ctx, buildEvent(req, window))
	if err != nil {
		logger.Error("Calendar event creation failed", zap.String("email", req.Email), zap.Error(err))
		return nil, NewUpstreamError("calendar", err)
	}
	logger.Info("Calendar event created", zap.String("eventId", created.ID), zap.String("link", created.HTMLLink))

	messageID, err := mailClient.Send(ctx, buildConfirmation(req, window))
	if err != nil {
		// The event already exists; report failure without compensating.
		logger.Error("Confirmation email failed after calendar success",
			zap.String("eventId", created.ID), zap.Error(err))
		return nil, NewUpstreamError("email", err)
	}
	logger.Info("Confirmation email sent", zap.String("messageId", messageID))

	return &models.ScheduleOutcome{
		EventID:   created.ID,
		EventLink: created.HTMLLink,
		MessageID: messageID,
	}, nil
}

func (s *DefaultSchedulerService) slotDuration() time.Duration {
	if s.SlotDuration > 0 {
		return s.SlotDuration
	}
	return DefaultSlotDuration
}

func parseWindow(value string, slot time.Duration) (models.AppointmentWindow, error) {
	var lastErr error
	for _, layout := range dateTimeLayouts {
		start, err := time.Parse(layout, value)
		if err == nil {
			return models.AppointmentWindow{Start: start, End: start.Add(slot)}, nil
		}
		lastErr = err
	}
	return models.AppointmentWindow{}, lastErr
}

func buildEvent(req models.ScheduleRequest, window models.AppointmentWindow) EventInput {
	phone := req.Phone
	if phone == "" {
		phone = "Not provided"
	}
	description := strings.Join([]string{
		"Prospective client consultation requested via chatbot.",
		"",
		"Name: " + req.Name,
		"Email: " + req.Email,
		"Phone: " + phone,
	}, "\n")

	return EventInput{
		Summary:       fmt.Sprintf("Consultation: %s - %s", req.Name, brand),
		Description:   description,
		Start:         window.Start,
		End:           window.End,
		AttendeeEmail: req.Email,
		Reminders:     DefaultReminders,
	}
}

func buildConfirmation(req models.ScheduleRequest, window models.AppointmentWindow) MailMessage {
	date := window.Start.Format("Monday, January 2, 2006")
	clock := window.Start.Format("3:04 PM")

	body := fmt.Sprintf(
		"Hi %s,\n\nThank you for scheduling an appointment with %s. We look forward to speaking with you on %s at %s.\n\nIf you have any questions before the meeting, feel free to reply to this email.\n\n— The %s Team",
		req.Name, brand, date, clock, brand,
	)

	return MailMessage{
		To:      req.Email,
		Subject: "Appointment Confirmation – " + brand,
		Body:    body,
	}
}
