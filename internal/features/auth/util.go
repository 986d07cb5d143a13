package auth

import (
	"regexp"
	"strings"

	"github.com/xyz-asif/filmdeck/internal/pkg/validator"
)

var usernameStrip = regexp.MustCompile(`[^a-z0-9._-]+`)

func normalizeEmail(email string) string {
	return validator.NormalizeEmail(email)
}

// UsernameFromEmail derives a username from the local part of an email
// address. Used when a sign up omits userName.
func UsernameFromEmail(email string) string {
	local := normalizeEmail(email)
	if at := strings.IndexByte(local, '@'); at >= 0 {
		local = local[:at]
	}

	username := usernameStrip.ReplaceAllString(local, "")

	// Truncate to max length
	if len(username) > 50 {
		username = username[:50]
	}

	if len(username) < 2 {
		username = "user" + username
	}

	return username
}
