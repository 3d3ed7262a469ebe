// ABOUTME: Tests for the support chat session against a fake completion API
// ABOUTME: Covers history accumulation, failure rollback, and retry behavior
package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI replays scripted responses and records every request.
type fakeAPI struct {
	requests  []openai.ChatCompletionRequest
	responses []string
	errs      []error
	calls     int
}

func (f *fakeAPI) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	i := f.calls
	f.calls++

	if i < len(f.errs) && f.errs[i] != nil {
		return openai.ChatCompletionResponse{}, f.errs[i]
	}

	content := ""
	if i < len(f.responses) {
		content = f.responses[i]
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}, nil
}

func newTestClient(api completionAPI, maxRetries int) *Client {
	return &Client{
		api:        api,
		chatModel:  "gpt-4o-mini",
		timeout:    time.Second,
		maxRetries: maxRetries,
		retryDelay: time.Millisecond,
	}
}

func TestChatSession_PreservesHistory(t *testing.T) {
	api := &fakeAPI{responses: []string{"I hear you.", "That makes sense."}}
	session := newTestClient(api, 0).OpenChat()

	first, err := session.Send(context.Background(), "I'm having a rough night")
	require.NoError(t, err)
	assert.Equal(t, "I hear you.", first)

	_, err = session.Send(context.Background(), "The cravings are strong")
	require.NoError(t, err)

	// The second request carries the whole conversation
	req := api.requests[1]
	require.Len(t, req.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, SystemInstruction, req.Messages[0].Content)
	assert.Equal(t, "I'm having a rough night", req.Messages[1].Content)
	assert.Equal(t, "I hear you.", req.Messages[2].Content)
	assert.Equal(t, "The cravings are strong", req.Messages[3].Content)

	assert.Equal(t, 4, session.Turns())
}

func TestChatSession_FailureLeavesHistoryUntouched(t *testing.T) {
	api := &fakeAPI{errs: []error{errors.New("rate limited")}}
	session := newTestClient(api, 0).OpenChat()

	_, err := session.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, 0, session.Turns(), "a failed send must not leave a dangling user turn")

	// The retry succeeds and the conversation holds exactly one exchange
	api.errs = nil
	api.responses = []string{"", "Welcome."}
	_, err = session.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 2, session.Turns())
}

func TestChatSession_RejectsEmptyMessage(t *testing.T) {
	api := &fakeAPI{}
	session := newTestClient(api, 0).OpenChat()

	_, err := session.Send(context.Background(), "   ")
	assert.Error(t, err)
	assert.Zero(t, api.calls)
}

func TestComplete_RetriesTransientFailures(t *testing.T) {
	api := &fakeAPI{
		errs:      []error{errors.New("boom"), errors.New("boom")},
		responses: []string{"", "", "steady now"},
	}
	c := newTestClient(api, 3)

	reply, err := c.complete(context.Background(), []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "hi"},
	}, 0.7)
	require.NoError(t, err)
	assert.Equal(t, "steady now", reply)
	assert.Equal(t, 3, api.calls)
}

func TestComplete_ExhaustsRetries(t *testing.T) {
	api := &fakeAPI{errs: []error{errors.New("down"), errors.New("down")}}
	c := newTestClient(api, 1)

	_, err := c.complete(context.Background(), []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "hi"},
	}, 0.7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}
