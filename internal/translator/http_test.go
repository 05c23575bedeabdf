package translator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMyMemoryService_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "hello" {
			t.Errorf("expected q=hello, got %q", got)
		}
		if got := r.URL.Query().Get("langpair"); got != "en|fr" {
			t.Errorf("expected langpair=en|fr, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":"bonjour","match":0.98},"responseStatus":200}`))
	}))
	defer server.Close()

	svc := &MyMemoryService{baseURL: server.URL, client: server.Client()}

	result, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "hello",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "bonjour" {
		t.Errorf("expected 'bonjour', got %q", result.TranslatedText)
	}
	if result.Confidence != 0.98 {
		t.Errorf("expected confidence 0.98, got %v", result.Confidence)
	}
	if result.DetectedLang != "en" {
		t.Errorf("expected detected lang 'en', got %q", result.DetectedLang)
	}
}

func TestMyMemoryService_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":"","match":0},"responseStatus":403,"responseDetails":"INVALID LANGUAGE PAIR"}`))
	}))
	defer server.Close()

	svc := &MyMemoryService{baseURL: server.URL, client: server.Client()}

	_, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "hello",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err == nil {
		t.Fatal("expected error for non-200 API status")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upstream.Service != "mymemory" {
		t.Errorf("expected service 'mymemory', got %q", upstream.Service)
	}
}

func TestMyMemoryService_Translate_ConfidenceClamped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":"hola","match":1.5},"responseStatus":200}`))
	}))
	defer server.Close()

	svc := &MyMemoryService{baseURL: server.URL, client: server.Client()}

	result, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "hello",
		SourceLang: "en",
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Confidence != 1.0 {
		t.Errorf("expected confidence clamped to 1.0, got %v", result.Confidence)
	}
}

func TestMyMemoryService_IsAvailable(t *testing.T) {
	svc := NewMyMemoryService("test@example.com")

	if err := svc.IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMyMemoryService_SupportedLanguages(t *testing.T) {
	svc := NewMyMemoryService("")

	langs, err := svc.SupportedLanguages(context.Background())
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(langs) == 0 {
		t.Error("expected non-empty language list")
	}
}

func TestMyMemoryService_Name(t *testing.T) {
	svc := NewMyMemoryService("")

	if svc.Name() != "mymemory" {
		t.Errorf("expected 'mymemory', got %q", svc.Name())
	}
}

func TestSystranService_Translate_NoAPIKey(t *testing.T) {
	svc := NewSystranService("")

	_, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err == nil {
		t.Error("expected error when no API key")
	}
}

func TestSystranService_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-RapidAPI-Key"); got != "test-key" {
			t.Errorf("expected API key header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"outputs":[{"output":"bonjour","detectedLanguage":"en"}]}`))
	}))
	defer server.Close()

	svc := &SystranService{apiKey: "test-key", baseURL: server.URL, client: server.Client()}

	result, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "hello",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "bonjour" {
		t.Errorf("expected 'bonjour', got %q", result.TranslatedText)
	}
	if result.DetectedLang != "en" {
		t.Errorf("expected detected lang 'en', got %q", result.DetectedLang)
	}
}

func TestSystranService_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Forbidden"))
	}))
	defer server.Close()

	svc := &SystranService{apiKey: "test-key", baseURL: server.URL, client: server.Client()}

	_, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err == nil {
		t.Error("expected error for non-OK status")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
}

func TestSystranService_Translate_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"outputs":[]}`))
	}))
	defer server.Close()

	svc := &SystranService{apiKey: "test-key", baseURL: server.URL, client: server.Client()}

	_, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err == nil {
		t.Error("expected error for empty translation response")
	}
}

func TestSystranService_IsAvailable(t *testing.T) {
	if err := NewSystranService("").IsAvailable(context.Background()); err == nil {
		t.Error("expected error when no API key")
	}
	if err := NewSystranService("test-key").IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSystranService_Name(t *testing.T) {
	svc := NewSystranService("test-key")

	if svc.Name() != "systran" {
		t.Errorf("expected 'systran', got %q", svc.Name())
	}
}
