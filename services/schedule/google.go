package schedule

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
)

// GoogleCalendarClient implements CalendarClient over the Calendar API.
type GoogleCalendarClient struct {
	svc        *calendar.Service
	calendarID string
}

func NewGoogleCalendarClient(svc *calendar.Service, calendarID string) *GoogleCalendarClient {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleCalendarClient{svc: svc, calendarID: calendarID}
}

func (c *GoogleCalendarClient) CreateEvent(ctx context.Context, in EventInput) (*CreatedEvent, error) {
	overrides := make([]*calendar.EventReminder, 0, len(in.Reminders))
	for _, r := range in.Reminders {
		overrides = append(overrides, &calendar.EventReminder{
			Method:  r.Method,
			Minutes: r.Minutes,
		})
	}

	event := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &calendar.EventDateTime{DateTime: in.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: in.End.Format(time.RFC3339)},
		Attendees:   []*calendar.EventAttendee{{Email: in.AttendeeEmail}},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides:  overrides,
			// UseDefault is a zero value, so it must be forced onto the wire.
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("calendar insert: %w", err)
	}
	return &CreatedEvent{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

// GoogleMailClient implements MailClient over the Gmail API. The "me" user
// id resolves to the authorized account, which becomes the sender.
type GoogleMailClient struct {
	svc *gmail.Service
}

func NewGoogleMailClient(svc *gmail.Service) *GoogleMailClient {
	return &GoogleMailClient{svc: svc}
}

func (c *GoogleMailClient) Send(ctx context.Context, msg MailMessage) (string, error) {
	raw := EncodeMessage(msg)
	sent, err := c.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("gmail send: %w", err)
	}
	return sent.Id, nil
}

// EncodeMessage assembles an RFC 2822 plaintext message and base64url
// encodes it the way the Gmail API expects. Exported for testing.
func EncodeMessage(msg MailMessage) string {
	lines := []string{
		`Content-Type: text/plain; charset="UTF-8"`,
		"MIME-Version: 1.0",
		"Content-Transfer-Encoding: 7bit",
		"to: " + msg.To,
		"from: me",
		"subject: " + msg.Subject,
		"",
		msg.Body,
	}
	rfc822 := strings.Join(lines, "\r\n")
	return base64.RawURLEncoding.EncodeToString([]byte(rfc822))
}
