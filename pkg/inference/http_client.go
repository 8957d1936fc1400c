package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient calls a serverless text-classification endpoint
// (HuggingFace-style contract): POST {"inputs": text} to
// {baseURL}/models/{model}, response is a nested array of label/score pairs.
type HTTPClient struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func NewHTTPClient(baseURL, model, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

func (c *HTTPClient) Classify(ctx context.Context, text string) ([]LabelScore, error) {
	payload, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call classification endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classification endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	// The endpoint wraps the distribution in an outer array, one element per
	// input. A few deployments skip the wrapper, so try both shapes.
	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}

	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("parse classification response: %w", err)
	}
	return flat, nil
}
