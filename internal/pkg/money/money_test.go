package money

import (
	"errors"
	"testing"
)

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
		wantErr bool
	}{
		{
			name:    "rupee symbol with comma",
			display: "₹4,500",
			want:    4500.00,
		},
		{
			name:    "with decimal fraction",
			display: "₹4,500.50",
			want:    4500.50,
		},
		{
			name:    "plain number",
			display: "12000",
			want:    12000,
		},
		{
			name:    "indian grouping",
			display: "₹1,20,000",
			want:    120000,
		},
		{
			name:    "no digits at all",
			display: "₹ --",
			wantErr: true,
		},
		{
			name:    "empty string",
			display: "",
			wantErr: true,
		},
		{
			name:    "multiple decimal points",
			display: "4.5.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDisplay(tt.display)
			if tt.wantErr {
				if !errors.Is(err, ErrNoAmount) {
					t.Errorf("ParseDisplay(%q) error = %v, want ErrNoAmount", tt.display, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDisplay(%q) unexpected error: %v", tt.display, err)
			}
			if got != tt.want {
				t.Errorf("ParseDisplay(%q) = %v, want %v", tt.display, got, tt.want)
			}
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		paise int64
		want  string
	}{
		{450000, "₹4,500"},
		{450050, "₹4,500.50"},
		{100, "₹1"},
		{12000000, "₹1,20,000"},
		{999, "₹9.99"},
	}

	for _, tt := range tests {
		if got := FormatINR(tt.paise); got != tt.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tt.paise, got, tt.want)
		}
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	if got := ToMinorUnits(4500.00); got != 450000 {
		t.Errorf("ToMinorUnits(4500.00) = %d, want 450000", got)
	}
	if got := FromMinorUnits(450050); got != 4500.50 {
		t.Errorf("FromMinorUnits(450050) = %v, want 4500.50", got)
	}
}
