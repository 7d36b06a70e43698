package notify

import "strings"

// NormalizePhone brings a phone number into international digits-only form:
// every non-digit is stripped, a leading "00" international prefix is
// dropped, and a leading local trunk "0" is rewritten to the country code.
//
//	"00218912345678" -> "218912345678"
//	"0912345678"     -> "218912345678" (country code 218)
func NormalizePhone(phone, countryCode string) string {
	var b strings.Builder
	for _, ch := range phone {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "00") {
		cleaned = cleaned[2:]
	} else if strings.HasPrefix(cleaned, "0") {
		cleaned = countryCode + cleaned[1:]
	}
	return cleaned
}
