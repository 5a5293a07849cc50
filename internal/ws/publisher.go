package ws

import (
	"context"
	"encoding/json"
	"errors"

	"jobboard/internal/domain/notification"
)

var ErrBroadcastDropped = errors.New("ws broadcast dropped")

// Publish pushes n to the candidate's open connections. A candidate without
// connections is not an error.
func (h *Hub) Publish(_ context.Context, n notification.Notification) error {
	if h == nil {
		return nil
	}
	b, err := json.Marshal(n.Event())
	if err != nil {
		return err
	}
	if !h.Broadcast(n.CandidateID, b) {
		return ErrBroadcastDropped
	}
	return nil
}
