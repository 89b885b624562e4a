package notes

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/liushuangls/go-anthropic/v2"
	"github.com/sashabaranov/go-openai"
	"github.com/user/bark/internal/config"
)

const defaultPrompt = `Write a single short sentence describing this bookmarked page, suitable as a note.

Format your response exactly as:
NOTE: <your sentence>

Title: %s
URL: %s

Content:
%s`

// maxPromptContent bounds the page text sent to the model.
const maxPromptContent = 10000

// Summarizer writes bookmark notes with an LLM.
type Summarizer struct {
	cfg    config.LLMConfig
	reader *Reader
}

func NewSummarizer(cfg config.LLMConfig, reader *Reader) *Summarizer {
	return &Summarizer{cfg: cfg, reader: reader}
}

// Summarize returns a one-sentence note for the page. When the page cannot be
// read the note is written from the title and URL alone.
func (s *Summarizer) Summarize(ctx context.Context, title, url string) (string, error) {
	var content string
	if s.reader != nil {
		text, err := s.reader.Read(ctx, url)
		if err != nil {
			slog.Debug("reading page failed", "url", url, "error", err)
		} else {
			content = text
		}
	}

	response, err := s.complete(ctx, buildPrompt(s.cfg.Prompt, title, url, content))
	if err != nil {
		return "", err
	}

	return parseResponse(response), nil
}

func (s *Summarizer) complete(ctx context.Context, prompt string) (string, error) {
	switch s.cfg.Provider {
	case "anthropic":
		return s.completeWithAnthropic(ctx, prompt)
	case "openai", "openrouter":
		return s.completeWithOpenAI(ctx, prompt)
	default:
		return "", fmt.Errorf("unsupported LLM provider: %s", s.cfg.Provider)
	}
}

func (s *Summarizer) completeWithAnthropic(ctx context.Context, prompt string) (string, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	var opts []anthropic.ClientOption
	if s.cfg.BaseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(s.cfg.BaseURL))
	}
	client := anthropic.NewClient(apiKey, opts...)

	resp, err := client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(s.cfg.Model),
		MaxTokens: 200,
		Messages: []anthropic.Message{
			{
				Role:    anthropic.RoleUser,
				Content: []anthropic.MessageContent{{Type: "text", Text: &prompt}},
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("empty response from Anthropic")
	}

	return resp.Content[0].GetText(), nil
}

func (s *Summarizer) completeWithOpenAI(ctx context.Context, prompt string) (string, error) {
	var apiKey string
	baseURL := s.cfg.BaseURL

	if s.cfg.Provider == "openrouter" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
		if baseURL == "" {
			baseURL = "https://openrouter.ai/api/v1"
		}
	} else {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	if apiKey == "" {
		return "", fmt.Errorf("API key not set for provider %s", s.cfg.Provider)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if len(s.cfg.Headers) > 0 {
		cfg.HTTPClient = &headerClient{headers: s.cfg.Headers}
	}

	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.cfg.Model,
		MaxTokens: 200,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func buildPrompt(template, title, url, content string) string {
	if template == "" {
		template = defaultPrompt
	}
	if len(content) > maxPromptContent {
		cut := maxPromptContent
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}
	return fmt.Sprintf(template, title, url, content)
}

// parseResponse extracts the NOTE line, falling back to the first non-empty
// line when the model ignored the format.
func parseResponse(response string) string {
	var first string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "NOTE:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "NOTE:"))
		}
		if first == "" {
			first = line
		}
	}
	return first
}
