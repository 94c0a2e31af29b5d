package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"vidscribe/internal/logger"
)

const summaryPrompt = `You are analyzing a video transcript. Write a detailed summary of the excerpt below.

Requirements:
- Start with a one-sentence overview of the topic
- List the main points in the order they appear
- Keep domain terminology as spoken
- Use markdown: headings, bullet points, bold for key terms

Transcript excerpt:
---
%s
---`

type geminiSummarizer struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Summarizer that rotates through the supplied API keys
// when one is rate limited.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Summarizer, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	return &geminiSummarizer{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}, nil
}

// Summarize sends one text block to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *geminiSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, text)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return out, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *geminiSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
