package integrations

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when the requested user or resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the upstream rejects a call for quota.
	ErrRateLimited = errors.New("rate limited")

	// ErrNetwork is returned for transport failures and unexpected statuses.
	ErrNetwork = errors.New("network error")
)

// CheckStatus maps an HTTP status code onto the package sentinels.
// Any 2xx is success.
func CheckStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
