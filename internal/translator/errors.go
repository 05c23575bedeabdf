package translator

import "fmt"

// UnsupportedLanguageError indicates a language code the delegate
// capability does not recognize.
type UnsupportedLanguageError struct {
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language code %q", e.Code)
}

// UpstreamError indicates the external translation capability could not
// be reached or returned a failure.
type UpstreamError struct {
	Service string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation service %s unavailable: %v", e.Service, e.Cause)
	}
	return fmt.Sprintf("translation service %s unavailable", e.Service)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
