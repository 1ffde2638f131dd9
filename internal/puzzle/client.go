// Package puzzle fetches the day's letter list from the scroggle API.
package puzzle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/steved1964/scroggle-clue-site/internal/config"
)

// ErrMissingLetterList is returned when the API response carries no
// letter list.
var ErrMissingLetterList = errors.New("puzzle response missing LetterList")

// Client talks to the daily puzzle API.
type Client struct {
	httpClient *http.Client
	url        string
}

// New creates a puzzle API client from configuration.
func New(cfg config.PuzzleConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.URL,
	}
}

type puzzleResponse struct {
	LetterList string `json:"LetterList"`
}

// Fetch retrieves the current puzzle and returns its raw letter list.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build puzzle request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch puzzle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("puzzle API returned status %d", resp.StatusCode)
	}

	var pr puzzleResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("failed to decode puzzle response: %w", err)
	}
	if pr.LetterList == "" {
		return "", ErrMissingLetterList
	}

	log.Debug().Str("url", c.url).Msg("Fetched puzzle")
	return pr.LetterList, nil
}
