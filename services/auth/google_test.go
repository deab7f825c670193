package auth_test

import (
	"net/url"
	"testing"

	"regenmed/services/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *auth.GoogleManager {
	return auth.NewGoogleManager(auth.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/oauth2callback",
	})
}

func TestConsentURL(t *testing.T) {
	t.Parallel()
	consent, err := url.Parse(newManager().ConsentURL())
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", consent.Host)

	q := consent.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/oauth2callback", q.Get("redirect_uri"))
	// Offline access plus a forced consent re-prompt so a refresh
	// credential is always issued.
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))

	scope := q.Get("scope")
	assert.Contains(t, scope, "https://www.googleapis.com/auth/calendar.events")
	assert.Contains(t, scope, "https://www.googleapis.com/auth/gmail.send")
}

func TestConsentURL_Deterministic(t *testing.T) {
	t.Parallel()
	m := newManager()
	assert.Equal(t, m.ConsentURL(), m.ConsentURL())
}
