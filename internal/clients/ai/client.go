// Package ai is a thin client for the external document-analysis API.
// Enrichment is best-effort: callers are expected to treat any error here
// as "no metadata available", never as a failure of the upload itself.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"compliancedesk/internal/models"
)

const pkg = "aiClient/"

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func New(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
	}
}

type analyzeRequest struct {
	FileName   string `json:"file_name"`
	Mime       string `json:"mime"`
	Text       string `json:"text,omitempty"`
	ContentB64 string `json:"content_b64,omitempty"`
}

type analyzeResponse struct {
	Tags          []string `json:"tags"`
	ExtractedText string   `json:"extracted_text"`
	Confidence    float64  `json:"confidence"`
}

// Classify sends file content to the analysis API and returns suggested
// tags, extracted text and a confidence score. PDF text is extracted
// locally first so only text crosses the wire; PDFs stay unscored because
// plain-text extraction carries no meaningful confidence.
func (c *Client) Classify(ctx context.Context, fileName string, mime string, content []byte) (*models.Classification, error) {
	op := pkg + "Classify"

	switch {
	case mime == "application/pdf":
		text, err := extractPDFText(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		resp, err := c.analyze(ctx, analyzeRequest{FileName: fileName, Mime: mime, Text: text})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result := &models.Classification{Tags: resp.Tags}
		if text != "" {
			result.ExtractedText = &text
		}

		return result, nil

	case strings.HasPrefix(mime, "image/"):
		resp, err := c.analyze(ctx, analyzeRequest{
			FileName:   fileName,
			Mime:       mime,
			ContentB64: base64.StdEncoding.EncodeToString(content),
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		confidence := clamp01(resp.Confidence)

		result := &models.Classification{
			Tags:       resp.Tags,
			Confidence: &confidence,
		}
		if resp.ExtractedText != "" {
			result.ExtractedText = &resp.ExtractedText
		}

		return result, nil

	default:
		return nil, fmt.Errorf("%s: unsupported mime type %q", op, mime)
	}
}

func (c *Client) analyze(ctx context.Context, payload analyzeRequest) (*analyzeResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis api returned status %d", resp.StatusCode)
	}

	var parsed analyzeResponse

	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
