package models

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"approved to approved", StatusApproved, StatusApproved, false},
		{"approved to pending", StatusApproved, StatusPending, false},
		{"rejected to approved", StatusRejected, StatusApproved, false},
		{"rejected to pending", StatusRejected, StatusPending, false},
		{"pending to unknown", StatusPending, "archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "all", "Pending", "archived"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestValidDecision(t *testing.T) {
	if !ValidDecision(StatusApproved) || !ValidDecision(StatusRejected) {
		t.Error("ValidDecision() should accept approved and rejected")
	}
	if ValidDecision(StatusPending) {
		t.Error("ValidDecision() should not accept pending")
	}
	if ValidDecision("deleted") {
		t.Error("ValidDecision() should not accept unknown statuses")
	}
}

func TestIsReviewed(t *testing.T) {
	s := &Suggestion{Status: StatusPending}
	if s.IsReviewed() {
		t.Error("IsReviewed() = true for pending suggestion")
	}
	s.Status = StatusApproved
	if !s.IsReviewed() {
		t.Error("IsReviewed() = false for approved suggestion")
	}
}
