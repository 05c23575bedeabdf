package translator

import (
	"context"
	"errors"
	"fmt"
)

// Fallback tries each binding in order and returns the first success.
// Bindings are attempted sequentially; the web server owns all request
// concurrency, so no fan-out happens here.
type Fallback struct {
	services []TranslationService
}

func NewFallback(services ...TranslationService) *Fallback {
	return &Fallback{services: services}
}

func (f *Fallback) Name() string {
	return "fallback"
}

func (f *Fallback) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	if len(f.services) == 0 {
		return nil, &UpstreamError{Service: f.Name(), Cause: fmt.Errorf("no services configured")}
	}

	var errs []error
	for _, svc := range f.services {
		result, err := svc.Translate(ctx, req)
		if err == nil {
			return result, nil
		}

		// A bad language code fails identically everywhere; stop early.
		var unsupported *UnsupportedLanguageError
		if errors.As(err, &unsupported) {
			return result, err
		}

		errs = append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}

	return nil, &UpstreamError{Service: f.Name(), Cause: errors.Join(errs...)}
}

func (f *Fallback) IsAvailable(ctx context.Context) error {
	var errs []error
	for _, svc := range f.services {
		err := svc.IsAvailable(ctx)
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", svc.Name(), err))
	}
	return fmt.Errorf("no service available: %w", errors.Join(errs...))
}

func (f *Fallback) SupportedLanguages(ctx context.Context) ([]string, error) {
	if len(f.services) == 0 {
		return nil, fmt.Errorf("no services configured")
	}
	return f.services[0].SupportedLanguages(ctx)
}

// Services exposes the configured chain, in order.
func (f *Fallback) Services() []TranslationService {
	return f.services
}
