package ai

import (
	"context"
	"fmt"
	"log/slog"

	apierrors "github.com/hamzemohamed32/codementor/internal/errors"
)

// CompletionResult is the uniform outcome of one completion call. Content is
// always displayable: on failure it holds a fallback apology so callers can
// keep the conversation going without inspecting the error.
type CompletionResult struct {
	Content     string
	Succeeded   bool
	ErrorDetail string
}

// Gateway sends role-scoped prompts to the completion service. It never
// returns an error: every failure mode is absorbed into a fallback
// CompletionResult. Retries are a caller policy, not a gateway guarantee.
type Gateway struct {
	llm LLMService
}

// NewGateway creates a completion gateway on top of an LLMService.
func NewGateway(llm LLMService) *Gateway {
	return &Gateway{llm: llm}
}

// Complete builds the two-message exchange for the role and sends it
// upstream. The returned result is never nil and its Content is never empty.
func (g *Gateway) Complete(ctx context.Context, role Role, userContent string) *CompletionResult {
	slog.Info("completion request",
		slog.String("role", role.String()),
		slog.String("preview", truncate(userContent, 30)),
	)

	content, err := g.llm.Chat(ctx, []Message{
		SystemPrompt(PromptFor(role)),
		UserMessage(userContent),
	})
	if err != nil {
		code := apierrors.Classify(err)
		slog.Error("completion request failed",
			slog.String("role", role.String()),
			slog.String("error_code", string(code)),
			slog.String("error", err.Error()),
		)
		return &CompletionResult{
			Content:     fallbackContent(role, err),
			Succeeded:   false,
			ErrorDetail: err.Error(),
		}
	}

	slog.Info("completion response",
		slog.String("role", role.String()),
		slog.Int("length", len(content)),
	)
	return &CompletionResult{
		Content:   content,
		Succeeded: true,
	}
}

// fallbackContent builds the apology shown in place of a genuine answer. It
// names the role and carries the underlying error so the reply is
// distinguishable from a model answer.
func fallbackContent(role Role, err error) string {
	return fmt.Sprintf(`I apologize, but I'm having trouble connecting to the AI service right now.

As a %s, I would help you with this, but please try again in a moment.

**Technical error:** %v`, role, err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
