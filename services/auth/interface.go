package auth

import (
	"context"

	"regenmed/services/schedule"

	"golang.org/x/oauth2"
)

// Manager owns the Google authorization-code exchange and builds authorized
// provider clients from a session's stored tokens.
type Manager interface {
	// ConsentURL returns the provider consent redirect. Offline access and
	// a forced consent re-prompt guarantee a refresh credential.
	ConsentURL() string

	// Exchange trades an authorization code for a token bundle. On failure
	// the session must not be marked as authorized.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)

	// Clients wraps stored tokens into per-request calendar and mail
	// clients. Nothing is cached across requests, so revocation takes
	// effect on the next call.
	Clients(ctx context.Context, tokens *oauth2.Token) (schedule.CalendarClient, schedule.MailClient, error)
}
