package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig configures the Gemini client.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiClient answers through the Gemini API using the genai SDK.
type GeminiClient struct {
	cfg GeminiConfig

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiClient builds a client. The SDK client is created on first use so
// a missing key surfaces as ErrMissingAPIKey from Complete.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	return &GeminiClient{cfg: cfg}
}

func (g *GeminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      g.cfg.APIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  g.cfg.HTTPClient,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.cfg.BaseURL},
		})
	})
	return g.client, g.initErr
}

// Complete maps the conversation onto Gemini contents. Assistant turns use
// the model role, leading assistant turns are dropped and the system prompt
// becomes the system instruction.
func (g *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	if g.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	client, err := g.sdk(ctx)
	if err != nil {
		return "", fmt.Errorf("llm: gemini client: %w", err)
	}
	model := req.Model
	if model == "" {
		model = g.cfg.Model
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		// Gemini expects the conversation to open with a user turn.
		if len(contents) == 0 && msg.Role == RoleAssistant {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if msg.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &StatusError{Provider: "gemini", Code: apiErr.Code, Message: apiErr.Message}
		}
		return "", fmt.Errorf("llm: gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrMalformedResponse
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrMalformedResponse
	}
	return text, nil
}
