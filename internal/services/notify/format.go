package notify

import (
	"strconv"
	"strings"
)

// FormatAmount renders a monetary value with thousands separators and two
// decimals, e.g. 1234567.8 -> "1,234,567.80".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	out := b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// ParseAmount reads a formatted amount back into a number for the audit
// rows. Separators are tolerated; an unparseable value audits as zero.
func ParseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// roundWhole renders a formatted amount rounded to whole units with
// separators, as used inside the WhatsApp invoice list.
func roundWhole(formatted string) string {
	v := ParseAmount(formatted)
	return formatInt(int64(v + 0.5))
}

func formatInt(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
