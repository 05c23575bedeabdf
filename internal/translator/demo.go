package translator

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DemoService is an offline binding backed by a small phrasebook. It keeps
// the application usable without credentials for any network service, and
// doubles as a deterministic delegate in development.
type DemoService struct {
	phrasebook map[phraseKey]string
}

type phraseKey struct {
	text       string
	sourceLang string
	targetLang string
}

func NewDemoService() *DemoService {
	return &DemoService{
		phrasebook: map[phraseKey]string{
			{"hello", "en", "es"}:        "hola",
			{"hello", "en", "fr"}:        "bonjour",
			{"hello", "en", "de"}:        "hallo",
			{"goodbye", "en", "es"}:      "adiós",
			{"goodbye", "en", "fr"}:      "au revoir",
			{"thank you", "en", "es"}:    "gracias",
			{"thank you", "en", "fr"}:    "merci",
			{"how are you", "en", "es"}:  "cómo estás",
			{"good morning", "en", "es"}: "buenos días",
			{"good night", "en", "es"}:   "buenas noches",
		},
	}
}

func (s *DemoService) Name() string {
	return "demo"
}

func (s *DemoService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = "en"
	}
	result.DetectedLang = sourceLang

	if sourceLang == req.TargetLang {
		result.TranslatedText = req.Text
		result.Confidence = 1.0
		return result, nil
	}

	key := phraseKey{
		text:       strings.ToLower(strings.TrimSpace(req.Text)),
		sourceLang: sourceLang,
		targetLang: req.TargetLang,
	}

	if translated, ok := s.phrasebook[key]; ok {
		result.TranslatedText = translated
		result.Confidence = 0.95
		return result, nil
	}

	result.TranslatedText = fmt.Sprintf("[Translation of '%s' from %s to %s]",
		req.Text, sourceLang, req.TargetLang)
	result.Confidence = 0.7

	return result, nil
}

func (s *DemoService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *DemoService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "es", "fr", "de", "it", "pt", "ru", "zh", "ja", "ko", "ar", "hi"}, nil
}
