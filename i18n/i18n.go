// Package i18n holds the interface strings of the front end and picks the
// best bundled locale for a requested one.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"saxguide/fingering"
)

// BaseLocale is the locale every other catalog is checked against and
// falls back to.
const BaseLocale = "fr-FR"

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle contains every loaded locale.
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// LoadEmbedded loads the locales shipped with the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLocales)
}

// MustLoadEmbedded panics when the shipped locales are broken.
func MustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFromFS loads locales/*.yaml from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}

	base, ok := b.locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	for locale, messages := range b.locales {
		for key := range messages {
			if _, ok := base[key]; !ok {
				return nil, fmt.Errorf("locale %s: key %q missing from %s", locale, key, BaseLocale)
			}
		}
	}
	return b, nil
}

func (b *Bundle) add(p string, file localeFile) error {
	fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("locale %s: locale is required", p)
	}
	if locale != fromPath {
		return fmt.Errorf("locale %s: locale %q must match file name", p, locale)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("locale %s: %w", p, err)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("locale %s: messages are required", p)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("locale %s: message key cannot be blank", p)
		}
		messages[key] = value
	}
	b.locales[locale] = messages
	return nil
}

// Locales returns the loaded locale identifiers, base locale first.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		if locale != BaseLocale {
			out = append(out, locale)
		}
	}
	sort.Strings(out)
	return append([]string{BaseLocale}, out...)
}

// Message returns one raw message with base-locale fallback.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if v, ok := b.locales[locale][key]; ok {
		return v, true
	}
	v, ok := b.locales[BaseLocale][key]
	return v, ok
}

// Localizer formats messages for one matched locale.
type Localizer struct {
	locale  string
	printer *message.Printer
}

// Localizer matches requested against the bundled locales and returns a
// printer for the closest one. Unknown requests get the base locale.
func (b *Bundle) Localizer(requested string) (*Localizer, error) {
	locales := b.Locales()
	tags := make([]language.Tag, len(locales))
	builder := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	for i, locale := range locales {
		tags[i] = language.MustParse(locale)
		for key := range b.locales[BaseLocale] {
			msg, _ := b.Message(locale, key)
			if err := builder.SetString(tags[i], key, msg); err != nil {
				return nil, fmt.Errorf("register %s %s: %w", locale, key, err)
			}
		}
	}

	idx := 0
	if req, err := language.Parse(requested); err == nil {
		_, idx, _ = language.NewMatcher(tags).Match(req)
	}
	return &Localizer{
		locale:  locales[idx],
		printer: message.NewPrinter(tags[idx], message.Catalog(builder)),
	}, nil
}

// Locale returns the matched locale identifier.
func (l *Localizer) Locale() string {
	return l.locale
}

// T formats the message stored under key. Unknown keys come back verbatim.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// PitchName returns the localized name of a pitch class.
func (l *Localizer) PitchName(pc int) string {
	return l.T(fmt.Sprintf("pitch.%d", fingering.Mod12(pc)))
}

// InstrumentName returns the localized name of the instrument at index i.
func (l *Localizer) InstrumentName(i int) string {
	return l.T(fmt.Sprintf("instrument.%d", i))
}

// RegisterName returns the localized register heading.
func (l *Localizer) RegisterName(r fingering.Register) string {
	return l.T("register." + r.String())
}
