package errors

import (
	"net/url"
	"regexp"
	"strings"
)

// maxUsernameLength is GitHub's limit on login length.
const maxUsernameLength = 39

// usernameCharsRegex matches the permitted alphabet. Hyphen placement is
// checked separately because RE2 has no lookahead.
var usernameCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// ValidateUsername validates a GitHub login.
//
// Rules:
//   - 1 to 39 characters
//   - ASCII letters, digits and hyphens only
//   - Cannot begin or end with a hyphen
//   - No consecutive hyphens
func ValidateUsername(username string) error {
	if username == "" {
		return New(ErrCodeInvalidUsername, "username cannot be empty")
	}
	if len(username) > maxUsernameLength {
		return New(ErrCodeInvalidUsername, "username too long (max %d characters)", maxUsernameLength)
	}
	if !usernameCharsRegex.MatchString(username) {
		return New(ErrCodeInvalidUsername, "username may only contain alphanumeric characters or hyphens: %q", username)
	}
	if strings.HasPrefix(username, "-") || strings.HasSuffix(username, "-") {
		return New(ErrCodeInvalidUsername, "username cannot begin or end with a hyphen: %q", username)
	}
	if strings.Contains(username, "--") {
		return New(ErrCodeInvalidUsername, "username cannot contain consecutive hyphens: %q", username)
	}
	return nil
}

// ValidateUsernamePair validates both sides of a comparison.
func ValidateUsernamePair(first, second string) error {
	if err := ValidateUsername(first); err != nil {
		return err
	}
	return ValidateUsername(second)
}

// ValidateURL checks that rawURL is an absolute http or https URL with a
// host. field names the setting in the error message.
func ValidateURL(field, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "%s is not a valid URL", field)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "%s must use http or https: %q", field, rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "%s has no host: %q", field, rawURL)
	}
	return nil
}
