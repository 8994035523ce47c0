// Package assistant implements the AI collaborator on top of the OpenAI
// chat-completions API.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/peakform/fitness-api/internal/api/metrics"
	"github.com/peakform/fitness-api/internal/core/domain"
)

const (
	planSystemPrompt = "Create a personalized workout plan based on user goals and preferences. " +
		"Return JSON with exercises, sets, reps."
	chatSystemPrompt = "You are a knowledgeable fitness assistant. Provide concise, helpful answers " +
		"about exercise, nutrition, and health. If a question could be medically sensitive, " +
		"advise consulting a healthcare professional."
)

// OpenAIClient implements ports.Assistant. BaseURL is configurable so a
// local OpenAI-compatible endpoint can stand in during development.
type OpenAIClient struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

func NewOpenAIClient(apiKey, baseURL, model string, log zerolog.Logger) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model, log: log}
}

// GeneratePlan sends the caller's profile hints and returns the plan JSON.
func (c *OpenAIClient) GeneratePlan(ctx context.Context, profile json.RawMessage) (json.RawMessage, error) {
	start := time.Now()
	defer func() {
		metrics.AssistantRequestDuration.WithLabelValues("plan").Observe(time.Since(start).Seconds())
	}()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: planSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(profile)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", domain.ErrAssistantUnavailable)
	}

	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		c.log.Warn().Str("model", c.model).Msg("assistant returned non-JSON plan")
		return nil, fmt.Errorf("%w: malformed plan payload", domain.ErrAssistantUnavailable)
	}
	return json.RawMessage(content), nil
}

// ChatReply answers a free-form fitness question.
func (c *OpenAIClient) ChatReply(ctx context.Context, message string) (string, error) {
	start := time.Now()
	defer func() {
		metrics.AssistantRequestDuration.WithLabelValues("chat").Observe(time.Since(start).Seconds())
	}()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", domain.ErrAssistantUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
