package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"altboard/internal/models"
)

func testSuggestion() *models.Suggestion {
	return &models.Suggestion{
		EstablishedPlatform: "Twitter / X",
		AlternativeName:     "Mastodon",
		URL:                 "https://joinmastodon.org",
		Description:         "Federated microblogging",
		Tag:                 "Federated",
	}
}

func TestNotifySuggestionSubmitted(t *testing.T) {
	received := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("webhook method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		received <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.NotifySuggestionSubmitted(testSuggestion())

	select {
	case body := <-received:
		var payload struct {
			Embeds []struct {
				Title  string `json:"title"`
				Fields []struct {
					Name  string `json:"name"`
					Value string `json:"value"`
				} `json:"fields"`
			} `json:"embeds"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("failed to decode webhook payload: %v", err)
		}
		if len(payload.Embeds) != 1 {
			t.Fatalf("payload has %d embeds, want 1", len(payload.Embeds))
		}
		embed := payload.Embeds[0]
		if embed.Title != "New Alternative Suggestion" {
			t.Errorf("embed title = %q", embed.Title)
		}
		if len(embed.Fields) != 5 {
			t.Fatalf("embed has %d fields, want 5", len(embed.Fields))
		}
		if embed.Fields[1].Value != "Mastodon" {
			t.Errorf("alternative field = %q, want Mastodon", embed.Fields[1].Value)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestNotifyTruncatesLongDescriptions(t *testing.T) {
	received := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer srv.Close()

	s := testSuggestion()
	s.Description = strings.Repeat("x", 500)

	New(srv.URL).NotifySuggestionSubmitted(s)

	select {
	case body := <-received:
		if !strings.Contains(string(body), strings.Repeat("x", 200)+"...") {
			t.Error("long description should be truncated with ellipsis")
		}
		if strings.Contains(string(body), strings.Repeat("x", 201)) {
			t.Error("description should be cut at 200 characters")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestNotifyDisabledWithoutURL(t *testing.T) {
	client := New("")
	if client.IsEnabled() {
		t.Error("IsEnabled() = true for empty URL")
	}
	// Must be a no-op, not a panic.
	client.NotifySuggestionSubmitted(testSuggestion())
}

func TestPostReportsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL)
	if err := client.post(map[string]any{"content": "hi"}); err == nil {
		t.Error("post() expected error for HTTP 500")
	}
}
