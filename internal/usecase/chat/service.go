// Package chat is the conversational passthrough: the user's message goes to
// the completion model as-is, with no intent pipeline.
package chat

import (
	"context"
	"fmt"
)

// Service forwards messages to the completion model.
type Service struct {
	model Completer
}

// New creates a chat service.
func New(model Completer) *Service {
	return &Service{model: model}
}

// Reply returns the model's answer to a free-form message.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	reply, err := s.model.Complete(ctx, message)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	return reply, nil
}
