// Package webhook posts new-suggestion notices to a Discord-compatible
// webhook. Delivery is best effort: failures are logged and never surfaced
// to the submitter.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"altboard/internal/models"
)

// Client posts JSON payloads to a configured webhook URL.
type Client struct {
	url    string
	client *http.Client
}

// New creates a webhook client. An empty URL disables delivery.
func New(url string) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// IsEnabled returns true if a webhook URL is configured.
func (c *Client) IsEnabled() bool {
	return c.url != ""
}

// embed mirrors the subset of the Discord embed object the notice uses.
type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields"`
	Timestamp string       `json:"timestamp"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// NotifySuggestionSubmitted fires a notice about a freshly submitted
// suggestion in a goroutine. The caller's response never waits on it.
func (c *Client) NotifySuggestionSubmitted(s *models.Suggestion) {
	if !c.IsEnabled() {
		return
	}

	description := s.Description
	if len(description) > 200 {
		description = description[:200] + "..."
	}

	payload := map[string]any{
		"embeds": []embed{{
			Title: "New Alternative Suggestion",
			Color: 0x3b82f6,
			Fields: []embedField{
				{Name: "Platform", Value: s.EstablishedPlatform, Inline: true},
				{Name: "Alternative", Value: s.AlternativeName, Inline: true},
				{Name: "Category", Value: s.Tag, Inline: true},
				{Name: "URL", Value: s.URL},
				{Name: "Description", Value: description},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}

	go func() {
		if err := c.post(payload); err != nil {
			log.Printf("Webhook delivery failed: %v", err)
		}
	}()
}

func (c *Client) post(payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned HTTP %s", resp.Status)
	}
	return nil
}
