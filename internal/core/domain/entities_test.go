package domain

import (
	"testing"
	"time"
)

func TestPolicyPeriod(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		wantEnd time.Time
	}{
		{
			name:    "plain date",
			start:   time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
			wantEnd: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			name:    "leap day normalizes to Feb 28",
			start:   time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "Feb 28 stays Feb 28",
			start:   time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "year boundary",
			start:   time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
			wantEnd: time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd := PolicyPeriod(tt.start)
			if !gotStart.Equal(tt.start) {
				t.Errorf("start = %v, want %v", gotStart, tt.start)
			}
			if !gotEnd.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", gotEnd, tt.wantEnd)
			}
		})
	}
}

func TestValidationErrorFirstMessageWins(t *testing.T) {
	verr := NewValidationError()
	verr.Add("email", "Email is required")
	verr.Add("email", "Email is not valid")

	if got := verr.Fields["email"]; got != "Email is required" {
		t.Errorf("fields[email] = %q, want the first message", got)
	}
	if !verr.HasErrors() {
		t.Error("HasErrors() = false with one field set")
	}
}

func TestValidationErrorEmpty(t *testing.T) {
	verr := NewValidationError()
	if verr.HasErrors() {
		t.Error("HasErrors() = true with no fields set")
	}
}
