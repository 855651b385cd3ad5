package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Decoding parameters sent with every generation request.
const (
	Temperature     = 0.0
	MaxOutputTokens = 256
	TopP            = 0.95
)

type palmPrompt struct {
	Text string `json:"text"`
}

type palmRequest struct {
	Prompt          palmPrompt `json:"prompt"`
	Temperature     float64    `json:"temperature"`
	MaxOutputTokens int        `json:"maxOutputTokens"`
	TopP            float64    `json:"topP"`
}

type palmCandidate struct {
	Output string `json:"output"`
}

type palmResponse struct {
	Candidates []palmCandidate `json:"candidates"`
}

// PaLMClient calls a generateText endpoint over plain HTTP.
type PaLMClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewPaLMClient builds a client for endpoint. A zero timeout leaves the call
// bounded only by the request context.
func NewPaLMClient(endpoint, apiKey string, timeout time.Duration) *PaLMClient {
	return &PaLMClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *PaLMClient) requestURL() (string, error) {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", p.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Generate posts the prompt and returns the first candidate's output.
func (p *PaLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(palmRequest{
		Prompt:          palmPrompt{Text: prompt},
		Temperature:     Temperature,
		MaxOutputTokens: MaxOutputTokens,
		TopP:            TopP,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	target, err := p.requestURL()
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generate endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("generate endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var result palmResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if len(result.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	if result.Candidates[0].Output == "" {
		return "", ErrEmptyOutput
	}
	return result.Candidates[0].Output, nil
}
