package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// maxReplyBytes caps how much of a model reply is read into memory.
const maxReplyBytes = 1 << 20

// GeminiConfig holds the settings for a GeminiClient.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// GeminiClient estimates nutrition through the Gemini generateContent REST API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient creates a GeminiClient. An empty API key yields a client
// whose every call fails with ErrNotConfigured.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

// Estimate asks the model for the nutrition of a meal description.
func (c *GeminiClient) Estimate(ctx context.Context, mealText string) (Estimate, error) {
	if c.apiKey == "" {
		return Estimate{}, ErrNotConfigured
	}

	reply, err := c.generate(ctx, BuildPrompt(mealText))
	if err != nil {
		return Estimate{}, err
	}

	return ParseEstimate(reply)
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      0.2,
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading reply: %w", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyAPIError(resp.StatusCode, respBody)
	}

	parts := gjson.GetBytes(respBody, "candidates.0.content.parts.#.text").Array()
	if len(parts) == 0 {
		reason := gjson.GetBytes(respBody, "promptFeedback.blockReason").String()
		return "", fmt.Errorf("%w: reply has no text (block reason %q)", ErrUpstream, reason)
	}

	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.String())
	}
	return sb.String(), nil
}

// classifyAPIError maps a non-200 Gemini reply onto the package errors.
func classifyAPIError(status int, body []byte) error {
	msg := gjson.GetBytes(body, "error.message").String()
	apiStatus := gjson.GetBytes(body, "error.status").String()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "api key not valid"),
		status == http.StatusUnauthorized,
		status == http.StatusForbidden,
		apiStatus == "UNAUTHENTICATED",
		apiStatus == "PERMISSION_DENIED":
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, msg)
	case status == http.StatusTooManyRequests,
		apiStatus == "RESOURCE_EXHAUSTED",
		strings.Contains(lower, "quota"):
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, msg)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, status, msg)
	}
}
