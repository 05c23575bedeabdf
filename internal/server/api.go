package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/valpere/pereweb/internal/languages"
	"github.com/valpere/pereweb/internal/translator"
)

// The JSON API mirrors the HTML surface for programmatic clients.

func (s *Server) handleAPILanguages(w http.ResponseWriter, r *http.Request) {
	catalog := make(map[string]string)
	for _, l := range languages.All() {
		catalog[l.Code] = l.Name
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"languages": catalog,
	})
}

func (s *Server) handleAPIDetect(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" {
		writeJSONError(w, http.StatusBadRequest, "no text provided")
		return
	}

	code, ok := s.detector.DetectISO(text)
	if !ok {
		// Ambiguous input falls back to English, matching the form flow.
		code = "en"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"detected_language": code,
		"language_name":     languages.Name(code),
		"text":              text,
	})
}

func (s *Server) handleAPITranslate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text       string `json:"text"`
		SourceLang string `json:"source_lang"`
		TargetLang string `json:"target_lang"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" {
		writeJSONError(w, http.StatusBadRequest, "no text provided")
		return
	}
	if payload.TargetLang == "" {
		payload.TargetLang = s.cfg.DefaultTarget
	}

	result, err := s.translate(r.Context(), text, payload.SourceLang, payload.TargetLang)
	if err != nil {
		writeJSONError(w, apiStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":              true,
		"original_text":        text,
		"translated_text":      result.TranslatedText,
		"source_language":      result.DetectedLang,
		"source_language_name": languages.Name(result.DetectedLang),
		"target_language":      payload.TargetLang,
		"target_language_name": languages.Name(payload.TargetLang),
		"confidence":           result.Confidence,
		"service":              result.ServiceName,
	})
}

func (s *Server) handleAPITranslateBatch(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Texts      []string `json:"texts"`
		SourceLang string   `json:"source_lang"`
		TargetLang string   `json:"target_lang"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if len(payload.Texts) == 0 {
		writeJSONError(w, http.StatusBadRequest, "no texts provided")
		return
	}
	if payload.TargetLang == "" {
		payload.TargetLang = s.cfg.DefaultTarget
	}
	if !languages.IsSupported(payload.TargetLang) {
		writeJSONError(w, http.StatusBadRequest,
			(&translator.UnsupportedLanguageError{Code: payload.TargetLang}).Error())
		return
	}

	// Items are translated one at a time; the batch is a convenience
	// wrapper, not a parallel pipeline.
	results := make([]map[string]any, 0, len(payload.Texts))
	for _, text := range payload.Texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		result, err := s.translate(r.Context(), text, payload.SourceLang, payload.TargetLang)
		if err != nil {
			writeJSONError(w, apiStatus(err), err.Error())
			return
		}

		results = append(results, map[string]any{
			"original_text":   text,
			"translated_text": result.TranslatedText,
			"source_language": result.DetectedLang,
			"confidence":      result.Confidence,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":              true,
		"results":              results,
		"target_language":      payload.TargetLang,
		"target_language_name": languages.Name(payload.TargetLang),
	})
}

func apiStatus(err error) int {
	var unsupported *translator.UnsupportedLanguageError
	if errors.As(err, &unsupported) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
