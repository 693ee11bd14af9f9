package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("suggest: api key not configured")

const defaultRequestTimeout = 30 * time.Second

// Stub is one suggested task from the generative backend. The backend is
// opaque: the client only cares about the {title, category, duration} shape.
type Stub struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Duration int    `json:"duration"`
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Plan sends a free-text goal and returns the ordered suggestion list.
// Invalid durations are replaced with the 5-minute default and blank titles
// dropped; everything else is passed through untouched.
func (c *Client) Plan(ctx context.Context, goal string) ([]Stub, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]string{"goal": goal})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/plan", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("suggest: backend returned %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var stubs []Stub
	if err := json.NewDecoder(res.Body).Decode(&stubs); err != nil {
		return nil, fmt.Errorf("suggest: decode response: %w", err)
	}
	return Normalize(stubs), nil
}

// Normalize applies the defaulting rules for suggestion stubs: duration <= 0
// becomes 5 minutes, empty categories become Health, blank titles are dropped.
func Normalize(stubs []Stub) []Stub {
	out := make([]Stub, 0, len(stubs))
	for _, s := range stubs {
		s.Title = strings.TrimSpace(s.Title)
		if s.Title == "" {
			continue
		}
		if s.Duration <= 0 {
			s.Duration = 5
		}
		if strings.TrimSpace(s.Category) == "" {
			s.Category = "Health"
		}
		out = append(out, s)
	}
	return out
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
