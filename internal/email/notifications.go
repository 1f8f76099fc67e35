package email

import (
	"altboard/internal/config"
	"altboard/internal/models"
)

// Notifier sends email notifications for review decisions.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// NotifySuggestionApproved notifies the submitter that their suggestion was
// approved. Submitters without an email on file are skipped.
func (n *Notifier) NotifySuggestionApproved(s *models.Suggestion) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyOnReview {
		return
	}
	if s.SubmitterEmail == nil || *s.SubmitterEmail == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.SuggestionApproved(s)
	n.service.SendAsync([]string{*s.SubmitterEmail}, subject, htmlBody, textBody)
}

// NotifySuggestionRejected notifies the submitter that their suggestion was
// rejected.
func (n *Notifier) NotifySuggestionRejected(s *models.Suggestion) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyOnReview {
		return
	}
	if s.SubmitterEmail == nil || *s.SubmitterEmail == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.SuggestionRejected(s)
	n.service.SendAsync([]string{*s.SubmitterEmail}, subject, htmlBody, textBody)
}
