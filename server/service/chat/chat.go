// Package chat implements the conversation pipeline: it persists the human
// turn, obtains an assistant turn from the completion gateway, and persists
// that too. Gateway failures are absorbed into the conversation as fallback
// text, never surfaced as errors.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"

	"github.com/hamzemohamed32/codementor/plugin/ai"
	"github.com/hamzemohamed32/codementor/internal/observability"
	"github.com/hamzemohamed32/codementor/store"
)

// ErrEmptyContent is returned when a message has no content. It is the only
// caller-visible validation error of the pipeline.
var ErrEmptyContent = errors.New("message content is required")

// Completer is the slice of the completion gateway the pipeline needs.
type Completer interface {
	Complete(ctx context.Context, role ai.Role, userContent string) *ai.CompletionResult
}

// Service is the chat pipeline.
type Service struct {
	store     *store.Store
	completer Completer
}

// NewService creates a chat service.
func NewService(st *store.Store, completer Completer) *Service {
	return &Service{store: st, completer: completer}
}

// SendResult holds both turns of one exchange in creation order.
type SendResult struct {
	UserMessage      *store.Message
	AssistantMessage *store.Message
}

// SendMessage stores the user turn, asks the completion gateway for the
// assistant turn, and stores that as well. The user message is persisted
// strictly before the assistant message so concurrent history readers never
// observe a reply without its question. The assistant turn is stored
// regardless of whether the gateway succeeded.
func (s *Service) SendMessage(ctx context.Context, projectID int32, rawRole, content string) (*SendResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	role := ai.RoleFromString(rawRole)
	logger := observability.NewRequestContext(slog.Default(), role.String(), projectID)
	logger.Info("chat message received",
		slog.Int(observability.LogFieldMessageLen, len(content)),
	)

	userMessage, err := s.store.CreateMessage(ctx, &store.Message{
		UID:       shortuuid.New(),
		ProjectID: projectID,
		Role:      store.MessageRoleUser,
		Content:   content,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store user message")
	}

	result := s.completer.Complete(ctx, role, content)
	if !result.Succeeded {
		logger.Warn("completion degraded to fallback",
			slog.String("error_detail", result.ErrorDetail),
		)
	}

	assistantMessage, err := s.store.CreateMessage(ctx, &store.Message{
		UID:       shortuuid.New(),
		ProjectID: projectID,
		Role:      role.String(),
		Content:   result.Content,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store assistant message")
	}

	logger.Info("chat exchange stored",
		slog.Int64(observability.LogFieldDuration, logger.DurationMs()),
	)
	return &SendResult{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	}, nil
}

// GetHistory returns all messages of the project in creation order. A
// project without messages yields an empty slice, not an error.
func (s *Service) GetHistory(ctx context.Context, projectID int32) ([]*store.Message, error) {
	messages, err := s.store.ListMessages(ctx, &store.FindMessage{ProjectID: &projectID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}
	return messages, nil
}
