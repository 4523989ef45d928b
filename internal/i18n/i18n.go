// Package i18n resolves content keys to English or Marathi strings.
//
// A key missing from the table resolves to itself. Screens rely on this to
// pass raw labels (status values, category names) through the same lookup.
package i18n

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
)

// Lang is an active UI language.
type Lang string

const (
	English Lang = enum.LangEnglish
	Marathi Lang = enum.LangMarathi
)

// Entry is one bilingual record of the table.
type Entry struct {
	EN string `yaml:"en"`
	MR string `yaml:"mr"`
}

// In returns the string for lang.
func (e Entry) In(lang Lang) string {
	if lang == Marathi {
		return e.MR
	}
	return e.EN
}

//go:embed translations.yaml
var translationsYAML []byte

var table = mustLoadTable(translationsYAML)

func mustLoadTable(data []byte) map[string]Entry {
	t, err := parseTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

func parseTable(data []byte) (map[string]Entry, error) {
	var raw map[string]Entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}
	out := make(map[string]Entry, len(raw))
	for key, entry := range raw {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			return nil, fmt.Errorf("parse translations: blank key")
		}
		out[trimmed] = entry
	}
	return out, nil
}

// Lookup returns the string for key in lang, or key itself when the table
// has no usable value.
func Lookup(key string, lang Lang) string {
	entry, ok := table[key]
	if !ok {
		return key
	}
	if v := entry.In(lang); v != "" {
		return v
	}
	return key
}

// Has reports whether key is present in the table.
func Has(key string) bool {
	_, ok := table[key]
	return ok
}

// Keys returns every key of the table, sorted.
func Keys() []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pick chooses between the English and Marathi variants of an entity field
// such as name_en/name_mr. An empty Marathi value falls back to English.
func Pick(lang Lang, en, mr string) string {
	if lang == Marathi && mr != "" {
		return mr
	}
	return en
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Marathi})

// ParseLang accepts a language tag such as "mr", "mr-IN" or "EN" and returns
// the supported language it denotes.
func ParseLang(s string) (Lang, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	if idx == 1 {
		return Marathi, nil
	}
	return English, nil
}

// Translator holds the language chosen for the current session. The choice
// is not persisted.
type Translator struct {
	mu   sync.RWMutex
	lang Lang
}

// NewTranslator returns a Translator starting in lang.
func NewTranslator(lang Lang) *Translator {
	if lang != Marathi {
		lang = English
	}
	return &Translator{lang: lang}
}

func (t *Translator) Lang() Lang {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

func (t *Translator) SetLang(lang Lang) {
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
}

// T translates key in the current language.
func (t *Translator) T(key string) string {
	return Lookup(key, t.Lang())
}

// Pick chooses an entity field variant in the current language.
func (t *Translator) Pick(en, mr string) string {
	return Pick(t.Lang(), en, mr)
}
