package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/aura-commerce/ministore-backend/pkg/config"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
)

// Client calls the generateContent endpoint of a Gemini-style API.
type Client struct {
	httpClient *http.Client
	cfg        config.AdvisorConfig
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"topK"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewClient builds the advisor API client. A missing API key is allowed at
// construction; every call will then fail and the service falls back.
func NewClient(cfg config.AdvisorConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("advisor base url is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("advisor model is required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}, nil
}

// GenerateContent sends one prompt and returns the first candidate's text.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "advisor api key not configured")
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature: c.cfg.Temperature,
			TopK:        c.cfg.TopK,
			TopP:        c.cfg.TopP,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding advisor request")
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.Model), url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building advisor request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "calling advisor api")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading advisor response")
	}

	if res.StatusCode != http.StatusOK {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "advisor api returned an error").
			WithDetails(map[string]any{"status": res.StatusCode})
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding advisor response")
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "advisor api returned no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
