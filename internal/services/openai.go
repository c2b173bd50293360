package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"pdf-summarizer/internal/logger"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	MaxSummaryInputChars = 15000
	SummaryTemperature   = 0.5
	SummaryMaxTokens     = 500
	SummaryMaxWords      = 300

	summarySystemPrompt = "You are an assistant that writes clear, concise and well-structured summaries of documents. Keep the key points and the essential information."
)

// Summarizer condenses plain text into a short natural-language summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService builds the chat-completion client. An empty baseURL keeps
// the public OpenAI endpoint.
func NewOpenAIService(apiKey, model, baseURL string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIService{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (s *OpenAIService) Summarize(ctx context.Context, text string) (string, error) {
	input := TruncateForSummary(text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: summarySystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: SummaryUserPrompt(input),
				},
			},
			Temperature: SummaryTemperature,
			MaxTokens:   SummaryMaxTokens,
		},
	)
	if err != nil {
		return "", NewSummarizationError(fmt.Errorf("failed to create chat completion: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", NewSummarizationError(errors.New("no response from OpenAI"))
	}

	logger.WithFields(logrus.Fields{
		"model":            s.model,
		"inputLength":      utf8.RuneCountInString(input),
		"promptTokens":     resp.Usage.PromptTokens,
		"completionTokens": resp.Usage.CompletionTokens,
	}).Info("Generated summary")

	return resp.Choices[0].Message.Content, nil
}

// SummaryUserPrompt embeds the (already truncated) text in the user instruction.
func SummaryUserPrompt(text string) string {
	return fmt.Sprintf(
		"Summarize the following text clearly and concisely (maximum %d words):\n\n%s",
		SummaryMaxWords,
		text,
	)
}

// TruncateForSummary caps text at MaxSummaryInputChars characters and marks
// the cut with an ellipsis.
func TruncateForSummary(text string) string {
	return truncateRunes(text, MaxSummaryInputChars)
}

func truncateRunes(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}
