package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/valpere/pereweb/internal"
	"github.com/valpere/pereweb/internal/contact"
	"github.com/valpere/pereweb/internal/languages"
	"github.com/valpere/pereweb/internal/translator"
)

// indexPage is the template context for the single view.
type indexPage struct {
	Languages    []languages.Language
	Text         string
	SourceLang   string
	TargetLang   string
	Result       *internal.TranslationResult
	Error        string
	ContactAck   *contact.Acknowledgement
	ContactError string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, indexPage{SourceLang: "auto"})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(r.PostFormValue("text"))
	targetLang := r.PostFormValue("target_lang")
	sourceLang := r.PostFormValue("source_lang")
	if sourceLang == "" {
		sourceLang = "auto"
	}

	page := indexPage{Text: text, SourceLang: sourceLang, TargetLang: targetLang}

	// Empty input never reaches the delegate capability.
	if text == "" {
		page.Error = "Enter text to translate."
		s.renderIndex(w, page)
		return
	}

	result, err := s.translate(r.Context(), text, sourceLang, targetLang)
	if err != nil {
		page.Error = userMessage(err)
		s.renderIndex(w, page)
		return
	}

	page.Result = result
	s.renderIndex(w, page)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	page := indexPage{SourceLang: "auto"}

	ack, err := s.contacts.Submit(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("message"))
	if err != nil {
		page.ContactError = err.Error()
		s.renderIndex(w, page)
		return
	}

	page.ContactAck = ack
	s.renderIndex(w, page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) renderIndex(w http.ResponseWriter, page indexPage) {
	page.Languages = languages.All()
	if page.TargetLang == "" {
		page.TargetLang = s.cfg.DefaultTarget
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, "index.html", page); err != nil {
		s.logger.Printf("render failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// translate validates the target, resolves "auto" source via the
// detector, and calls the delegate within the configured timeout.
func (s *Server) translate(ctx context.Context, text, sourceLang, targetLang string) (*internal.TranslationResult, error) {
	if !languages.IsSupported(targetLang) {
		return nil, &translator.UnsupportedLanguageError{Code: targetLang}
	}

	if sourceLang == "" || sourceLang == "auto" {
		if detected, ok := s.detector.DetectISO(text); ok {
			sourceLang = detected
		} else {
			sourceLang = "auto"
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	res, err := s.translator.Translate(ctx, translator.TranslateRequest{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return nil, err
	}

	detected := res.DetectedLang
	if detected == "" && sourceLang != "auto" {
		detected = sourceLang
	}

	result := &internal.TranslationResult{
		TranslatedText: res.TranslatedText,
		DetectedLang:   detected,
		ServiceName:    res.ServiceName,
		Confidence:     res.Confidence,
	}

	if ok, verr := s.validator.IsValid(result.TranslatedText, targetLang); !ok && verr != nil {
		// Surface in the log only; the delegate's answer still stands.
		s.logger.Printf("translation validation: %v", verr)
	}

	return result, nil
}

// userMessage converts delegate failures into inline page text.
func userMessage(err error) string {
	var unsupported *translator.UnsupportedLanguageError
	if errors.As(err, &unsupported) {
		return fmt.Sprintf("Language %q is not supported.", unsupported.Code)
	}
	return "Translation service is unavailable. Please try again later."
}
