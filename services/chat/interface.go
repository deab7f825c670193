package chat

import (
	"context"
	"fmt"

	"regenmed/models"
)

// Relay forwards one chat turn, with its caller-supplied history, to the
// conversational model and returns the reply text verbatim. History is
// stateless per request; the server never stores it. Authorization state is
// irrelevant here — only scheduling needs a Google credential.
type Relay interface {
	Reply(ctx context.Context, history []models.ChatTurn, message string) (string, error)
}

// ModelError signals a missing or failed model response.
type ModelError struct {
	Cause error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model request failed: %v", e.Cause)
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}
