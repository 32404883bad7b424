package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound       = errors.New("event nicht gefunden")
	ErrUnauthorized        = errors.New("nur admins dürfen diese aktion ausführen")
	ErrPlatformUnavailable = errors.New("discord nicht erreichbar")
	ErrInvalidEventType    = errors.New("unbekannter event-typ")
	ErrInvalidCategory     = errors.New("unbekannte kategorie")
	ErrEmptyDescription    = errors.New("beschreibung darf nicht leer sein")
	ErrSessionNotFound     = errors.New("auswahl abgelaufen oder unbekannt")
	ErrSessionIncomplete   = errors.New("auswahl unvollständig")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrEventNotFound, "event_not_found"},
	{ErrUnauthorized, "unauthorized"},
	{ErrPlatformUnavailable, "platform_unavailable"},
	{ErrInvalidEventType, "invalid_event_type"},
	{ErrInvalidCategory, "invalid_category"},
	{ErrEmptyDescription, "empty_description"},
	{ErrSessionNotFound, "session_not_found"},
	{ErrSessionIncomplete, "session_incomplete"},
}

// Code returns the stable code of the domain error wrapped in err, or "" when
// err does not wrap one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
