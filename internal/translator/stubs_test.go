package translator

import (
	"context"
)

// stubService is a scriptable binding for fallback tests.
type stubService struct {
	name      string
	result    *ServiceResult
	err       error
	callCount int
}

func (s *stubService) Name() string {
	return s.name
}

func (s *stubService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	s.callCount++
	if s.err != nil {
		return &ServiceResult{ServiceName: s.name}, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &ServiceResult{ServiceName: s.name, TranslatedText: "stub", Confidence: 1.0}, nil
}

func (s *stubService) IsAvailable(ctx context.Context) error {
	return s.err
}

func (s *stubService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "fr"}, nil
}

var _ TranslationService = (*stubService)(nil)
