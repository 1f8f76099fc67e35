package models

import (
	"time"

	"github.com/google/uuid"
)

// Suggestion statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Suggestion represents a visitor-submitted alternative awaiting review.
type Suggestion struct {
	ID                  uuid.UUID  `json:"id"`
	EstablishedPlatform string     `json:"establishedPlatform"`
	AlternativeName     string     `json:"alternativeName"`
	URL                 string     `json:"url"`
	Description         string     `json:"description"`
	Tag                 string     `json:"tag"`
	SubmitterEmail      *string    `json:"submitterEmail"`
	SubmitterIP         string     `json:"submitterIp"`
	Status              string     `json:"status"` // pending, approved, rejected
	ReviewedAt          *time.Time `json:"reviewedAt"`
	ReviewedBy          *string    `json:"reviewedBy"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// ValidStatus reports whether s is a known suggestion status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// ValidDecision reports whether s is a status a reviewer may assign.
// Suggestions only ever move from pending to approved or rejected.
func ValidDecision(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether a suggestion in status from may move to to.
// Decided suggestions are final: there is no path back to pending and no
// path between approved and rejected.
func CanTransition(from, to string) bool {
	return from == StatusPending && ValidDecision(to)
}

// IsReviewed reports whether the suggestion has already been decided.
func (s *Suggestion) IsReviewed() bool {
	return s.Status != StatusPending
}
