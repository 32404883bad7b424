package discord

import "turfbot/internal/domain"

// DomainErrorKey maps an error to the catalog key of its user-facing message.
func DomainErrorKey(err error) string {
	if code := domain.Code(err); code != "" {
		return "errors_" + code
	}
	return "errors_generic"
}
