package format

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// fallbackTag is used when the environment names no usable locale
var fallbackTag = language.AmericanEnglish

// localeEnvVars are consulted in POSIX precedence order for numeric formatting
var localeEnvVars = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// SystemTag returns the locale named by the environment.
func SystemTag() language.Tag {
	for _, name := range localeEnvVars {
		if value := os.Getenv(name); value != "" {
			return ParseLocale(value)
		}
	}
	return fallbackTag
}

// ParseLocale converts a POSIX locale name such as "de_DE.UTF-8" or "sr_RS@latin"
// into a language tag. "C", "POSIX" and unparsable names map to en-US.
func ParseLocale(name string) language.Tag {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return fallbackTag
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return fallbackTag
	}
	return tag
}
