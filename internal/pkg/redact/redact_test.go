package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNationalID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "*********01", NationalID("12345678901"))
	require.Equal(t, "*********01", NationalID(" 12345678901 "))
	require.Equal(t, "***", NationalID("12a45678901"))
	require.Equal(t, "***", NationalID("1"))
	require.Equal(t, "***", NationalID("123456789012"))
}

func TestPhone(t *testing.T) {
	t.Parallel()

	require.Equal(t, "053 *** ** **", Phone("05321234567"))
	require.Equal(t, "053 *** ** **", Phone("0532 123 45 67"))
	require.Equal(t, "***", Phone("12"))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "us***@example.com", Email("user@example.com"))
	require.Equal(t, "***@example.com", Email("ab@example.com"))
	require.Equal(t, "***", Email("broken"))
}

func TestCard(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pay 411111******1111 now", Card("pay 4111111111111111 now"))
	require.Equal(t, "411111******1111", Card("4111 1111 1111 1111"))
	require.Equal(t, "short 123456", Card("short 123456"))
}

func TestSanitizePII(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		in   string
		want string
	}{
		{"national_id", "tc 12345678901 var", "tc 12*******01 var"},
		{"intl_mobile", "tel +90 532 123 45 67", "tel +** *** *** ** **"},
		{"iban", "iban TR330006100519786457841326", "iban TR3300****************1326"},
		{"card", "kart 5500000000000004", "kart 550000******0004"},
		{"iban_spaced", "TR33 0006 1005 1978 6457 8413 26", "TR3300****************1326"},
		{"plain", "nothing here", "nothing here"},
		{"empty", "", ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SanitizePII(tc.in))
		})
	}
}

func TestTokenAndPassword(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_TOKEN]", Token())
	require.Equal(t, "[REDACTED_PASSWORD]", Password())
}
