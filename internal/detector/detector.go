package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/pereweb/internal/languages"
)

// catalog maps the front end's language codes to lingua languages.
// Restricting the detector to the catalog improves accuracy on the short
// texts a web form produces.
var catalog = map[string]lingua.Language{
	"en": lingua.English,
	"es": lingua.Spanish,
	"fr": lingua.French,
	"de": lingua.German,
	"it": lingua.Italian,
	"pt": lingua.Portuguese,
	"ru": lingua.Russian,
	"zh": lingua.Chinese,
	"ja": lingua.Japanese,
	"ko": lingua.Korean,
	"ar": lingua.Arabic,
	"hi": lingua.Hindi,
}

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over the catalog languages. Construction is
// expensive; build once and share.
func New() *Detector {
	langs := make([]lingua.Language, 0, len(catalog))
	for _, code := range languages.Codes() {
		if l, ok := catalog[code]; ok {
			langs = append(langs, l)
		}
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lowercase ISO 639-1 code of the detected language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
