// ABOUTME: Tests for the grounded resource search
// ABOUTME: Covers citation parsing, zero-citation answers, and unformatted model output
package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResources_ParsesCitations(t *testing.T) {
	api := &fakeAPI{responses: []string{
		`{"text": "AA meetings run nightly downtown.", "sources": [{"title": "AA Intergroup", "url": "https://aa.org"}, {"title": "SAMHSA Helpline", "url": "https://samhsa.gov"}]}`,
	}}
	c := newTestClient(api, 0)

	res, err := c.SearchResources(context.Background(), "AA meetings near me")
	require.NoError(t, err)

	assert.Equal(t, "AA meetings run nightly downtown.", res.Text)
	require.Len(t, res.Citations, 2)
	assert.Equal(t, "AA Intergroup", res.Citations[0].Title)
	assert.Equal(t, "https://aa.org", res.Citations[0].URL)
}

func TestSearchResources_ZeroCitationsIsValid(t *testing.T) {
	api := &fakeAPI{responses: []string{
		`{"text": "Try your local community center.", "sources": []}`,
	}}
	c := newTestClient(api, 0)

	res, err := c.SearchResources(context.Background(), "support groups")
	require.NoError(t, err)
	assert.Equal(t, "Try your local community center.", res.Text)
	assert.Empty(t, res.Citations)
}

func TestSearchResources_DropsSourcesWithoutURLs(t *testing.T) {
	api := &fakeAPI{responses: []string{
		`{"text": "ok", "sources": [{"title": "No link"}, {"title": "Linked", "url": "https://example.org"}]}`,
	}}
	c := newTestClient(api, 0)

	res, err := c.SearchResources(context.Background(), "hotlines")
	require.NoError(t, err)
	require.Len(t, res.Citations, 1)
	assert.Equal(t, "Linked", res.Citations[0].Title)
}

func TestSearchResources_UnformattedAnswerKeptWithoutSources(t *testing.T) {
	api := &fakeAPI{responses: []string{"Just call 988 if you need someone right now."}}
	c := newTestClient(api, 0)

	res, err := c.SearchResources(context.Background(), "crisis line")
	require.NoError(t, err)
	assert.Equal(t, "Just call 988 if you need someone right now.", res.Text)
	assert.Empty(t, res.Citations)
}

func TestSearchResources_StripsCodeFence(t *testing.T) {
	api := &fakeAPI{responses: []string{
		"```json\n{\"text\": \"fenced\", \"sources\": [{\"title\": \"T\", \"url\": \"https://t.example\"}]}\n```",
	}}
	c := newTestClient(api, 0)

	res, err := c.SearchResources(context.Background(), "meetings")
	require.NoError(t, err)
	assert.Equal(t, "fenced", res.Text)
	require.Len(t, res.Citations, 1)
}

func TestSearchResources_RejectsEmptyQuery(t *testing.T) {
	c := newTestClient(&fakeAPI{}, 0)
	_, err := c.SearchResources(context.Background(), "  ")
	assert.Error(t, err)
}
