// ABOUTME: Stateful support chat session over the OpenAI client
// ABOUTME: History accumulates for the session's lifetime; each send carries the whole conversation
package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// ChatSession is one text support conversation. Every send includes the
// full prior history so the model keeps context across turns. Sessions
// are not persisted; closing the screen discards them.
type ChatSession struct {
	client *Client

	mu      sync.Mutex
	history []openai.ChatCompletionMessage
}

// OpenChat starts a support chat grounded in the safety prompt.
func (c *Client) OpenChat() *ChatSession {
	return &ChatSession{
		client: c,
		history: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemInstruction},
		},
	}
}

// Send submits one user turn and returns the model's reply. On failure
// the history is left exactly as it was, so a retry of the same text
// does not duplicate the turn.
func (s *ChatSession) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("message must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages := append(append([]openai.ChatCompletionMessage(nil), s.history...),
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text})

	reply, err := s.client.complete(ctx, messages, 0.7)
	if err != nil {
		return "", fmt.Errorf("sending support message: %w", err)
	}

	s.history = append(messages,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply})
	return reply, nil
}

// Turns reports how many user/assistant turns the session holds,
// excluding the system prompt.
func (s *ChatSession) Turns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history) - 1
}
