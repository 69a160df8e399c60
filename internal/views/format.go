// Package views builds the data each screen renders. Builders are pure:
// the same role, data and state always give the same view.
package views

import (
	"math"
	"strconv"
	"time"
)

// Rupees formats an amount with Indian digit grouping, e.g. ₹4,50,000
func Rupees(amount int64) string {
	sign := ""
	magnitude := uint64(amount)
	if amount < 0 {
		sign = "-"
		magnitude = -magnitude
	}
	digits := strconv.FormatUint(magnitude, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	out := sign + "₹"
	for _, g := range groups {
		out += g + ","
	}
	return out + tail
}

// RupeesFloat rounds to whole rupees before formatting
func RupeesFloat(amount float64) string {
	return Rupees(int64(math.Round(amount)))
}

func dateLabel(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}
