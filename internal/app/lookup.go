package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type InstantAnswer struct {
	Answer    string `json:"answer"`
	SourceURL string `json:"source_url"`
}

// AnswerClient is the optional instant-answer collaborator. The session
// works fully offline with a nil client.
type AnswerClient interface {
	Lookup(ctx context.Context, query string) (*InstantAnswer, error)
}

// HTTPAnswerClient calls GET <base>/api/answer?q=<query>.
type HTTPAnswerClient struct {
	base   string
	client *http.Client
}

func NewHTTPAnswerClient(base string) *HTTPAnswerClient {
	return &HTTPAnswerClient{
		base:   strings.TrimRight(strings.TrimSpace(base), "/"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPAnswerClient) Lookup(ctx context.Context, query string) (*InstantAnswer, error) {
	endpoint := c.base + "/api/answer?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("answer endpoint returned status %d", resp.StatusCode)
	}
	var ans InstantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&ans); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}
	return &ans, nil
}
