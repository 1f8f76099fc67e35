package email

import (
	"strings"
	"testing"

	"altboard/internal/config"
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

func testTemplates() *Templates {
	return NewTemplates(&config.Config{
		SiteTitle: "Altboard",
		BaseURL:   "https://altboard.example.org",
	})
}

func TestSuggestionApproved(t *testing.T) {
	subject, htmlBody, textBody := testTemplates().SuggestionApproved(testSuggestion())

	if !strings.Contains(subject, "Mastodon") || !strings.Contains(subject, "approved") {
		t.Errorf("subject = %q, want alternative name and decision", subject)
	}
	if !strings.Contains(htmlBody, "https://joinmastodon.org") {
		t.Error("HTML body should include the suggested URL")
	}
	if !strings.Contains(htmlBody, "Altboard") {
		t.Error("HTML body should carry the site title")
	}
	if !strings.Contains(textBody, "Mastodon") {
		t.Error("text body should include the alternative name")
	}
}

func TestSuggestionRejected(t *testing.T) {
	subject, htmlBody, textBody := testTemplates().SuggestionRejected(testSuggestion())

	if !strings.Contains(subject, "not accepted") {
		t.Errorf("subject = %q, want rejection wording", subject)
	}
	if !strings.Contains(htmlBody, "Federated") {
		t.Error("HTML body should include the category")
	}
	if !strings.Contains(textBody, "not accepted") {
		t.Error("text body should state the decision")
	}
}

func TestTemplatesEscapeHTML(t *testing.T) {
	s := testSuggestion()
	s.AlternativeName = `<script>alert("x")</script>`

	_, htmlBody, _ := testTemplates().SuggestionApproved(s)
	if strings.Contains(htmlBody, "<script>") {
		t.Error("HTML body should escape markup in suggestion fields")
	}
}

func TestNotifierSkipsWithoutEmail(t *testing.T) {
	cfg := &config.Config{EmailNotifyOnReview: true}
	n := NewNotifier(cfg)

	// No SMTP configured and no submitter email: both must be silent no-ops.
	n.NotifySuggestionApproved(testSuggestion())
	n.NotifySuggestionRejected(testSuggestion())
}

func TestBuildMIMEMessage(t *testing.T) {
	msg := buildMIMEMessage("Altboard <noreply@example.org>", []string{"a@example.org"},
		"Hello", "<p>hi</p>", "hi")

	for _, want := range []string{
		"From: Altboard <noreply@example.org>",
		"To: a@example.org",
		"Subject: Hello",
		"multipart/alternative",
		"text/plain",
		"text/html",
		"<p>hi</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}
