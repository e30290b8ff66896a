package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Classifier turns raw text into a labeled intensity.
type Classifier interface {
	Classify(ctx context.Context, text string) (Intensity, error)
}

// HFClassifier calls a HuggingFace inference endpoint hosting a
// text-classification model. The response is the usual nested score list;
// the top-scoring class wins.
type HFClassifier struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type hfRequest struct {
	Inputs string `json:"inputs"`
}

type hfScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NewHFClassifier returns a classifier against the HuggingFace inference API.
func NewHFClassifier(apiKey, baseURL, model string) *HFClassifier {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co/models"
	}
	return &HFClassifier{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Classify returns the top predicted label and its probability.
func (c *HFClassifier) Classify(ctx context.Context, text string) (Intensity, error) {
	body, err := json.Marshal(hfRequest{Inputs: text})
	if err != nil {
		return Intensity{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Intensity{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Intensity{}, fmt.Errorf("classification request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Intensity{}, fmt.Errorf("failed to read classifier response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Intensity{}, fmt.Errorf("classifier api error (status %d): %s", resp.StatusCode, string(respBody))
	}

	// The inference API wraps single-input results in an extra array.
	var nested [][]hfScore
	if err := json.Unmarshal(respBody, &nested); err != nil {
		var flat []hfScore
		if err := json.Unmarshal(respBody, &flat); err != nil {
			return Intensity{}, fmt.Errorf("failed to decode classifier response: %w", err)
		}
		nested = [][]hfScore{flat}
	}
	if len(nested) == 0 || len(nested[0]) == 0 {
		return Intensity{}, fmt.Errorf("empty classifier response")
	}

	top := nested[0][0]
	for _, s := range nested[0][1:] {
		if s.Score > top.Score {
			top = s
		}
	}
	return Intensity{Label: top.Label, Confidence: top.Score}, nil
}
