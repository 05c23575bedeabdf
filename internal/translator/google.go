package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService translates through the Google Cloud Translation API.
// The client is built once at construction and shared across requests.
type GoogleService struct {
	client *translate.Client
}

func NewGoogleService(ctx context.Context, cfg ServiceConfig) (*GoogleService, error) {
	opts := []option.ClientOption{}
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	return &GoogleService{client: client}, nil
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetTag, err := language.Parse(req.TargetLang)
	if err != nil {
		return result, &UnsupportedLanguageError{Code: req.TargetLang}
	}

	var opts *translate.Options
	if req.SourceLang != "" && req.SourceLang != "auto" {
		sourceTag, err := language.Parse(req.SourceLang)
		if err != nil {
			return result, &UnsupportedLanguageError{Code: req.SourceLang}
		}
		opts = &translate.Options{Source: sourceTag}
	}

	if s.client == nil {
		return result, &UpstreamError{Service: s.Name(), Cause: fmt.Errorf("client not initialized")}
	}

	translations, err := s.client.Translate(ctx, []string{req.Text}, targetTag, opts)
	if err != nil {
		return result, &UpstreamError{Service: s.Name(), Cause: err}
	}
	if len(translations) == 0 {
		return result, &UpstreamError{Service: s.Name(), Cause: fmt.Errorf("no translation returned")}
	}

	result.TranslatedText = translations[0].Text
	result.Confidence = 1.0
	if translations[0].Source != language.Und {
		result.DetectedLang = translations[0].Source.String()
	}

	return result, nil
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("google translate client not initialized")
	}
	return nil
}

func (s *GoogleService) SupportedLanguages(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("google translate client not initialized")
	}

	langs, err := s.client.SupportedLanguages(ctx, language.English)
	if err != nil {
		return nil, &UpstreamError{Service: s.Name(), Cause: err}
	}

	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Tag.String())
	}
	return codes, nil
}

// Close releases the underlying API client.
func (s *GoogleService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
