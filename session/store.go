// Package session stores per-visitor state keyed by the opaque cookie
// identifier. The store is an injected interface so the in-process map can
// be swapped for Redis without touching the handlers.
package session

import (
	"context"

	"regenmed/models"

	"golang.org/x/oauth2"
)

// Store maps a session identifier to its state. Get returns nil (and no
// error) for an unknown identifier. Writes replace the whole session value;
// there is no field-level merge.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	SetTokens(ctx context.Context, id string, tokens *oauth2.Token) error
	HasTokens(ctx context.Context, id string) (bool, error)
}
