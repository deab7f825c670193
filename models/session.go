package models

import "golang.org/x/oauth2"

// Session holds the per-visitor state keyed by the opaque cookie identifier.
// Tokens stays nil until the visitor completes the Google consent flow; a
// later grant replaces the whole bundle.
type Session struct {
	ID     string        `json:"id"`
	Tokens *oauth2.Token `json:"tokens,omitempty"`
}

// Authenticated reports whether the session carries a usable token bundle.
func (s *Session) Authenticated() bool {
	return s != nil && s.Tokens != nil
}
