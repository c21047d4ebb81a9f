package render

import (
	"fmt"
	"strings"
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string shown when a key cannot be
// translated. err is ErrMissingTranslator when no translator is configured.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Catalog is an in-memory Translator keyed by locale then message key. Locale
// lookups fall back from "en-US" to "en".
type Catalog map[string]map[string]string

// Translate implements Translator.
func (c Catalog) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		messages, ok := c[candidate]
		if !ok {
			continue
		}
		if msg, ok := messages[key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("render: no translation for %q in locale %q", key, locale)
}

// DefaultMessages carries the built-in component strings.
var DefaultMessages = Catalog{
	"en": {
		"PaginationWrapper.placeholder": "Please configure content",
		"Pagination.prev":               "Previous",
		"Pagination.next":               "Next",
		"Pagination.goto":               "Go",
	},
	"zh-CN": {
		"PaginationWrapper.placeholder": "请配置内容",
		"Pagination.prev":               "上一页",
		"Pagination.next":               "下一页",
		"Pagination.goto":               "跳转",
	},
}

// Translate resolves key through t, routing failures through onMissing. With
// no handler the key itself is returned so missing strings stay visible.
func Translate(t Translator, onMissing MissingTranslationHandler, locale, key string, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if onMissing == nil {
		onMissing = MissingTranslationKey
	}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}

	msg, err := t.Translate(locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(locale, key, args, err)
	}
	return msg
}

// MissingTranslationKey is the default MissingTranslationHandler: it echoes
// the key.
func MissingTranslationKey(_ string, key string, _ []any, _ error) string {
	return key
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return []string{"en"}
	}
	chain := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}
