// ABOUTME: One-shot grounded search for the resources screen
// ABOUTME: Returns prose plus citations; zero citations is a valid outcome
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Citation is one source backing a search answer.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SearchResult pairs the prose answer with the sources behind it.
type SearchResult struct {
	Text      string
	Citations []Citation
}

// SearchResources runs one stateless grounded query. Each call is
// independent; the resources screen keeps no conversation.
func (c *Client) SearchResources(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	content, err := c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: searchInstruction},
		{Role: openai.ChatMessageRoleUser, Content: query},
	}, 0.3)
	if err != nil {
		return nil, fmt.Errorf("searching resources: %w", err)
	}

	var parsed struct {
		Text    string     `json:"text"`
		Sources []Citation `json:"sources"`
	}
	if err := json.Unmarshal([]byte(stripFence(content)), &parsed); err != nil {
		// A model that ignored the format still gave an answer; keep it
		// and report no sources rather than failing the screen.
		return &SearchResult{Text: content}, nil
	}

	citations := parsed.Sources[:0:0]
	for _, src := range parsed.Sources {
		if src.URL == "" {
			continue
		}
		citations = append(citations, src)
	}
	return &SearchResult{Text: parsed.Text, Citations: citations}, nil
}

// stripFence removes a markdown code fence the model sometimes wraps
// JSON in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
