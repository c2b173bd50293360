package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// newFakeOpenAI serves the chat-completions route and records the last request.
func newFakeOpenAI(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

const completionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"model": "gpt-3.5-turbo",
	"choices": [{"index": 0, "message": {"role": "assistant", "content": "A short summary."}, "finish_reason": "stop"}],
	"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
}`

func TestOpenAIServiceSummarize(t *testing.T) {
	srv, captured := newFakeOpenAI(t, http.StatusOK, completionBody)
	svc := NewOpenAIService("sk-test", "gpt-3.5-turbo", srv.URL+"/v1")

	summary, err := svc.Summarize(context.Background(), "The document talks about quarterly results.")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)

	assert.Equal(t, "gpt-3.5-turbo", captured.Model)
	assert.InDelta(t, 0.5, captured.Temperature, 1e-9)
	assert.Equal(t, 500, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, summarySystemPrompt, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, SummaryUserPrompt("The document talks about quarterly results."), captured.Messages[1].Content)
	assert.Contains(t, captured.Messages[1].Content, "maximum 300 words")
}

func TestOpenAIServiceTruncatesLongInput(t *testing.T) {
	srv, captured := newFakeOpenAI(t, http.StatusOK, completionBody)
	svc := NewOpenAIService("sk-test", "gpt-3.5-turbo", srv.URL+"/v1")

	long := strings.Repeat("a", 14000) + strings.Repeat("b", 6000)
	_, err := svc.Summarize(context.Background(), long)
	require.NoError(t, err)

	require.Len(t, captured.Messages, 2)
	sent := strings.TrimPrefix(captured.Messages[1].Content, SummaryUserPrompt(""))
	assert.Equal(t, long[:15000]+"...", sent)
}

func TestOpenAIServiceUpstreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "invalid api key",
			status: http.StatusUnauthorized,
			body:   `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error", "code": "invalid_api_key"}}`,
			want:   "Incorrect API key provided",
		},
		{
			name:   "quota exceeded",
			status: http.StatusTooManyRequests,
			body:   `{"error": {"message": "You exceeded your current quota", "type": "insufficient_quota"}}`,
			want:   "You exceeded your current quota",
		},
		{
			name:   "no choices",
			status: http.StatusOK,
			body:   `{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`,
			want:   "no response from OpenAI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newFakeOpenAI(t, tt.status, tt.body)
			svc := NewOpenAIService("sk-test", "gpt-3.5-turbo", srv.URL+"/v1")

			_, err := svc.Summarize(context.Background(), "some text")
			require.Error(t, err)

			var svcErr *ServiceError
			require.True(t, errors.As(err, &svcErr))
			assert.Equal(t, KindSummarization, svcErr.Kind)
			assert.Equal(t, http.StatusInternalServerError, svcErr.Status)
			assert.True(t, strings.HasPrefix(svcErr.Detail, "Error generating summary: "))
			assert.Contains(t, svcErr.Detail, tt.want)
		})
	}
}

func TestOpenAIServiceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	svc := NewOpenAIService("sk-test", "gpt-3.5-turbo", url+"/v1")
	_, err := svc.Summarize(context.Background(), "some text")

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, KindSummarization, svcErr.Kind)
}

func TestTruncateForSummary(t *testing.T) {
	short := strings.Repeat("x", MaxSummaryInputChars)
	assert.Equal(t, short, TruncateForSummary(short))

	long := strings.Repeat("é", MaxSummaryInputChars+1)
	got := TruncateForSummary(long)
	assert.Equal(t, MaxSummaryInputChars+3, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "é..."))
}
