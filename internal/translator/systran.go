package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const systranBaseURL = "https://api-systran-systran-translation-v1.p.rapidapi.com"

// SystranService translates through Systran's RapidAPI endpoint.
type SystranService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSystranService(apiKey string) *SystranService {
	return &SystranService{
		apiKey:  apiKey,
		baseURL: systranBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SystranService) Name() string {
	return "systran"
}

func (s *SystranService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if s.apiKey == "" {
		return result, &UpstreamError{Service: s.Name(), Cause: fmt.Errorf("API key required")}
	}

	sourceLang := req.SourceLang
	if sourceLang == "auto" {
		sourceLang = ""
	}

	systranReq := map[string]interface{}{
		"text":   []string{req.Text},
		"source": sourceLang,
		"target": req.TargetLang,
		"format": "text",
	}

	jsonData, err := json.Marshal(systranReq)
	if err != nil {
		return result, &UpstreamError{Service: s.Name(), Cause: fmt.Errorf("failed to marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/translation/text/translate", bytes.NewBuffer(jsonData))
	if err != nil {
		return result, &UpstreamError{Service: s.Name(), Cause: err}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-RapidAPI-Key", s.apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", "api-systran-systran-translation-v1.p.rapidapi.com")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return result, &UpstreamError{Service: s.Name(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return result, &UpstreamError{
			Service: s.Name(),
			Cause:   fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var systranResp struct {
		Outputs []struct {
			Output         string  `json:"output"`
			DetectedLang   string  `json:"detectedLanguage"`
			DetectedConfid float64 `json:"detectedLanguageConfidence"`
		} `json:"outputs"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&systranResp); err != nil {
		return result, &UpstreamError{Service: s.Name(), Cause: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(systranResp.Outputs) == 0 || systranResp.Outputs[0].Output == "" {
		return result, &UpstreamError{Service: s.Name(), Cause: fmt.Errorf("empty translation response")}
	}

	result.TranslatedText = systranResp.Outputs[0].Output
	result.DetectedLang = systranResp.Outputs[0].DetectedLang
	result.Confidence = 1.0

	return result, nil
}

func (s *SystranService) IsAvailable(ctx context.Context) error {
	if s.apiKey == "" {
		return fmt.Errorf("Systran API key not configured")
	}
	return nil
}

func (s *SystranService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "fr", "es", "de", "it", "pt", "ru", "zh", "ja", "ko", "ar"}, nil
}
