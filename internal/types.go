package internal

import "time"

type TranslationRequest struct {
	ID         string    `json:"id"`
	SourceText string    `json:"source_text"`
	SourceLang string    `json:"source_lang"`
	TargetLang string    `json:"target_lang"`
	Timestamp  time.Time `json:"timestamp"`
}

type TranslationResult struct {
	TranslatedText string  `json:"translated_text"`
	DetectedLang   string  `json:"detected_lang,omitempty"`
	ServiceName    string  `json:"service_name"`
	Confidence     float64 `json:"confidence"`
}

type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
