package testutil

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

var secretPattern = regexp.MustCompile(`\b(\w{4})\w+\b`)

// MaskSecret keeps the first four characters of every word.
func MaskSecret(s string) string {
	return secretPattern.ReplaceAllString(s, "$1******")
}

func lookupNonEmpty(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	return v, len(v) > 0
}

// IntegrationTestConfigured returns the credentials in PREFIX_API_KEY and
// PREFIX_API_SECRET. ok is true only when both are non-empty and TEST_PREFIX=1,
// so a blank line in .env.local never enables the live tests.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	prefix = strings.ToUpper(prefix)

	key, hasKey := lookupNonEmpty(prefix + "_API_KEY")
	secret, hasSecret := lookupNonEmpty(prefix + "_API_SECRET")
	if !hasKey || !hasSecret || os.Getenv("TEST_"+prefix) != "1" {
		return key, secret, false
	}

	t.Logf("%s api integration test enabled, key = %s, secret = %s", prefix, MaskSecret(key), MaskSecret(secret))
	return key, secret, true
}
