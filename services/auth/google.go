package auth

import (
	"context"
	"fmt"

	"regenmed/services/schedule"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// ExchangeError signals a failed authorization-code exchange (invalid or
// expired code, or a provider outage).
type ExchangeError struct {
	Cause error
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("authorization code exchange failed: %v", e.Cause)
}

func (e *ExchangeError) Unwrap() error {
	return e.Cause
}

// GoogleManager implements Manager against Google's OAuth endpoints and the
// Calendar/Gmail APIs.
type GoogleManager struct {
	oauth      *oauth2.Config
	calendarID string
}

// Config holds the fixed client configuration for the consent flow.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CalendarID   string
}

func NewGoogleManager(cfg Config) *GoogleManager {
	return &GoogleManager{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes: []string{
				calendar.CalendarEventsScope,
				gmail.GmailSendScope,
			},
			Endpoint: google.Endpoint,
		},
		calendarID: cfg.CalendarID,
	}
}

func (m *GoogleManager) ConsentURL() string {
	return m.oauth.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func (m *GoogleManager) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := m.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, &ExchangeError{Cause: err}
	}
	return token, nil
}

func (m *GoogleManager) Clients(ctx context.Context, tokens *oauth2.Token) (schedule.CalendarClient, schedule.MailClient, error) {
	// The oauth2 transport refreshes the access token transparently when a
	// refresh token is present; otherwise an expired credential surfaces as
	// an upstream failure on the provider call.
	httpClient := m.oauth.Client(ctx, tokens)

	calendarSvc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build calendar client: %w", err)
	}
	gmailSvc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build gmail client: %w", err)
	}

	return schedule.NewGoogleCalendarClient(calendarSvc, m.calendarID),
		schedule.NewGoogleMailClient(gmailSvc), nil
}
