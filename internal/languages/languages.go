// Package languages holds the catalog of languages the front end offers.
package languages

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// codes is the ordered catalog. Target selectors and API listings follow
// this order.
var codes = []string{
	"en", "es", "fr", "de", "it", "pt", "ru", "zh", "ja", "ko", "ar", "hi",
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// All returns the catalog with English display names.
func All() []Language {
	namer := display.English.Tags()
	out := make([]Language, 0, len(codes))
	for _, code := range codes {
		out = append(out, Language{
			Code: code,
			Name: namer.Name(language.MustParse(code)),
		})
	}
	return out
}

// IsSupported reports whether code is in the catalog. Matching is
// case-insensitive on the base language ("EN" and "en-US" both match "en").
func IsSupported(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return false
	}
	for _, c := range codes {
		if strings.EqualFold(base.String(), c) {
			return true
		}
	}
	return false
}

// Name returns the English display name for a catalog code, or "Unknown"
// for anything outside the catalog.
func Name(code string) string {
	if !IsSupported(code) {
		return "Unknown"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "Unknown"
	}
	return display.English.Tags().Name(tag)
}

// Codes returns the catalog codes in presentation order.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
