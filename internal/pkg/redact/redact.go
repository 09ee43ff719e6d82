// redact маскирует персональные данные перед логированием и перед
// отдачей наружу (ответы ассистента, результаты инструментов).
package redact

import (
	"regexp"
	"strings"
)

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }

// NationalID оставляет только две последние цифры: 12345678901 -> *********01.
func NationalID(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 11 || !isDigits(s) {
		return "***"
	}

	return strings.Repeat("*", len(s)-2) + s[len(s)-2:]
}

// Phone оставляет код оператора: 05321234567 -> 053 *** ** **.
func Phone(s string) string {
	d := digitsOnly(s)
	if len(d) < 3 {
		return "***"
	}

	return d[:3] + " *** ** **"
}

// Email: user@example.com -> us***@example.com.
func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := parts[0], parts[1]
	if len(local) > 2 {
		local = local[:2] + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

var (
	reCard       = regexp.MustCompile(`\b\d(?:[ -]?\d){12,18}\b`)
	reNationalID = regexp.MustCompile(`\b(\d{2})\d{7}(\d{2})\b`)
	reIntlMobile = regexp.MustCompile(`\+90\s*5\d{2}\s*\d{3}\s*\d{2}\s*\d{2}\b`)
	reMobile     = regexp.MustCompile(`\b0?5\d{9}\b`)
	reIBAN       = regexp.MustCompile(`(?i)\bTR\d{2}(?:\s?\d){22}\b`)
	reDigit      = regexp.MustCompile(`\d`)
)

// Card маскирует номера карт (13-19 цифр, допускаются пробелы и дефисы):
// первые 6 и последние 4 цифры остаются.
func Card(s string) string {
	return reCard.ReplaceAllStringFunc(s, func(m string) string {
		d := digitsOnly(m)
		if len(d) < 13 || len(d) > 19 {
			return m
		}

		return d[:6] + strings.Repeat("*", len(d)-10) + d[len(d)-4:]
	})
}

// SanitizePII маскирует в свободном тексте национальные идентификаторы (11 цифр), мобильные номера,
// IBAN (TR) и номера карт.
func SanitizePII(s string) string {
	if s == "" {
		return s
	}

	s = reNationalID.ReplaceAllString(s, "${1}*******${2}")
	s = reIntlMobile.ReplaceAllStringFunc(s, func(m string) string {
		return reDigit.ReplaceAllString(m, "*")
	})
	s = reMobile.ReplaceAllStringFunc(s, func(m string) string {
		return m[:3] + "******" + m[len(m)-2:]
	})
	s = reIBAN.ReplaceAllStringFunc(s, func(m string) string {
		c := strings.Join(strings.Fields(m), "")
		return c[:6] + strings.Repeat("*", len(c)-10) + c[len(c)-4:]
	})

	return Card(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
