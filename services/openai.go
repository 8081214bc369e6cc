package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Ydharm/Whatsapp-FAQ-Bot/config"
)

const openAIAPIURL = "https://api.openai.com/v1/chat/completions"

// ChatRequest represents the request to the OpenAI chat completions API
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// ChatMessage represents a message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse represents the response from the OpenAI chat completions API
type ChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// OpenAIGenerator calls the OpenAI chat completions API to produce replies.
// It implements bot.TextGenerator.
type OpenAIGenerator struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

// NewOpenAIGenerator builds a generator from configuration. It returns nil
// when no API key is configured, which the responder treats as the expected
// fallback-only mode.
func NewOpenAIGenerator(cfg *config.Config) *OpenAIGenerator {
	if cfg.OpenAIAPIKey == "" {
		return nil
	}
	return &OpenAIGenerator{
		apiKey:      cfg.OpenAIAPIKey,
		model:       cfg.OpenAIModel,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.RequestTimeout,
	}
}

// Generate requests a bounded completion steered by the intent directive.
func (g *OpenAIGenerator) Generate(ctx context.Context, directive, message string) (string, error) {
	requestBody := ChatRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: "system", Content: directive},
			{Role: "user", Content: message},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", openAIAPIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	// A hanging completion must not stall the request
	client := &http.Client{
		Timeout: g.timeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		if os.IsTimeout(err) || strings.Contains(err.Error(), "deadline exceeded") {
			slog.Error("OpenAI API timeout",
				"error", err,
				"messageLength", len(message),
			)
			return "", fmt.Errorf("OpenAI API timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("OpenAI API error", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("OpenAI API error: %s", resp.Status)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) > 0 {
		reply := strings.TrimSpace(chatResp.Choices[0].Message.Content)
		slog.Info("OpenAI response generated",
			"promptTokens", chatResp.Usage.PromptTokens,
			"completionTokens", chatResp.Usage.CompletionTokens,
		)
		return reply, nil
	}

	return "", fmt.Errorf("no response content from OpenAI")
}
