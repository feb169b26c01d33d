package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoAmount is returned when a display string carries no numeric value
var ErrNoAmount = errors.New("no numeric amount in price string")

// ParseDisplay extracts the numeric amount from a display price such as
// "₹4,500" or "₹4,500.50". Everything except digits and the decimal point
// is stripped before parsing.
func ParseDisplay(display string) (float64, error) {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if !strings.ContainsAny(cleaned, "0123456789") {
		return 0, ErrNoAmount
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrNoAmount
	}

	return amount, nil
}

// ToMinorUnits converts a rupee amount to paise
func ToMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

// FromMinorUnits converts paise to a rupee amount
func FromMinorUnits(paise int64) float64 {
	return float64(paise) / 100
}

// FormatINR renders a paise amount as a display price ("₹4,500")
// Grouping follows the Indian system: the last three digits, then pairs.
func FormatINR(paise int64) string {
	rupees := paise / 100
	fraction := paise % 100

	digits := strconv.FormatInt(rupees, 10)
	grouped := groupIndian(digits)

	if fraction > 0 {
		return fmt.Sprintf("₹%s.%02d", grouped, fraction)
	}
	return "₹" + grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}

	return strings.Join(parts, ",") + "," + tail
}
