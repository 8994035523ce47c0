package ports

import (
	"context"
	"encoding/json"
)

// Assistant is the narrow interface to the external AI collaborator. Prompt
// construction and model choice live behind it; the core only sees opaque
// plan JSON and reply text.
type Assistant interface {
	GeneratePlan(ctx context.Context, profile json.RawMessage) (json.RawMessage, error)
	ChatReply(ctx context.Context, message string) (string, error)
}
