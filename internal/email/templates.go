package email

import (
	"fmt"
	"html"

	"altboard/internal/config"
	"altboard/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
    </style>
</head>
<body>
    <div class="header"><h1>%s</h1></div>
    <div class="content">%s</div>
    <div class="footer"><p>This email was sent by %s</p><p><a href="%s">%s</a></p></div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteTitle), t.cfg.BaseURL, t.cfg.BaseURL)
}

// suggestionBox renders the submitted suggestion for inclusion in a message.
func suggestionBox(s *models.Suggestion) string {
	return fmt.Sprintf(`<div class="info-box">
<p><span class="label">Platform:</span> %s</p>
<p><span class="label">Alternative:</span> %s</p>
<p><span class="label">URL:</span> <a href="%s">%s</a></p>
<p><span class="label">Category:</span> %s</p>
</div>`,
		html.EscapeString(s.EstablishedPlatform),
		html.EscapeString(s.AlternativeName),
		html.EscapeString(s.URL),
		html.EscapeString(s.URL),
		html.EscapeString(s.Tag))
}

// SuggestionApproved builds the approval notice for a submitter.
func (t *Templates) SuggestionApproved(s *models.Suggestion) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Your suggestion %q was approved", s.AlternativeName)

	content := fmt.Sprintf(`<p>Good news! Your suggested alternative was approved and will appear in the directory.</p>%s`,
		suggestionBox(s))
	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(
		"Good news! Your suggested alternative was approved and will appear in the directory.\n\nPlatform: %s\nAlternative: %s\nURL: %s\nCategory: %s\n",
		s.EstablishedPlatform, s.AlternativeName, s.URL, s.Tag)
	return subject, htmlBody, textBody
}

// SuggestionRejected builds the rejection notice for a submitter.
func (t *Templates) SuggestionRejected(s *models.Suggestion) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Your suggestion %q was not accepted", s.AlternativeName)

	content := fmt.Sprintf(`<p>Thank you for contributing. After review, your suggested alternative was not accepted into the directory.</p>%s<p>You are welcome to submit again with more detail.</p>`,
		suggestionBox(s))
	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(
		"Thank you for contributing. After review, your suggested alternative was not accepted into the directory.\n\nPlatform: %s\nAlternative: %s\nURL: %s\nCategory: %s\n\nYou are welcome to submit again with more detail.\n",
		s.EstablishedPlatform, s.AlternativeName, s.URL, s.Tag)
	return subject, htmlBody, textBody
}
