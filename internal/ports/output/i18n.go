package output

// Translator renders user-facing catalog entries for a locale. data fills
// template placeholders and may be nil.
type Translator interface {
	T(locale, key string, data map[string]any) string
}
