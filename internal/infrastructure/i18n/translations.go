package i18n

import (
	"context"
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"turfbot/internal/domain/view"
	"turfbot/internal/ports/output"
	"turfbot/pkg/logger"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             logger.Logger
}

// NewTranslator builds a Translator from the embedded active.*.toml catalogs.
// defaultLocale (e.g. "de") is used when a key is missing for the requested
// locale.
func NewTranslator(defaultLocale string, log logger.Logger) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: invalid default locale %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.de.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Translator{bundle: bundle, defaultLanguage: tag, log: log}, nil
}

// T renders the message identified by key for the given locale, falling back
// to the default locale and finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	languages := make([]string, 0, 2)
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Warn(context.Background(), "localize failed", logger.String("key", key), logger.Any("locales", languages), logger.Error(err))
		return key
	}
	return msg
}

// For binds the translator to one locale for view rendering.
func (t *Translator) For(locale string) view.Translate {
	return func(key string, data map[string]any) string {
		return t.T(locale, key, data)
	}
}
