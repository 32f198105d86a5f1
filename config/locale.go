package config

import "strings"

// FallbackLanguage is used when the locale names no language.
const FallbackLanguage = "en"

// localeVars are consulted in order; the first non-empty one wins.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG", "LANGUAGE"}

// LanguageFromLocale derives a language code from the locale environment,
// e.g. "de_DE.UTF-8" → "de". getenv is usually os.Getenv.
func LanguageFromLocale(getenv func(string) string) string {
	for _, name := range localeVars {
		value := getenv(name)
		if value == "" {
			continue
		}
		// LANGUAGE may hold a priority list such as "pt_BR:pt".
		value, _, _ = strings.Cut(value, ":")
		if i := strings.IndexAny(value, "_.@"); i >= 0 {
			value = value[:i]
		}
		switch value {
		case "", "C", "POSIX":
			return FallbackLanguage
		}
		return strings.ToLower(value)
	}
	return FallbackLanguage
}
