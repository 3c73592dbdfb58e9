package entity

// Request/response bodies for the backend REST contract.

type CreateSessionRequest struct {
	ReferenceURL string `json:"reference_url,omitempty"`
}

type SubmitAnswerRequest struct {
	SessionID int    `json:"session_id"`
	FieldName string `json:"field_name"`
	Value     any    `json:"value"`
}

type SubmitAnswerResponse struct {
	Success   bool   `json:"success"`
	FieldName string `json:"field_name"`
}

type AnalyzeRequest struct {
	URL string `json:"url"`
}

type GenerateRequest struct {
	SessionID    int          `json:"session_id"`
	TemplateID   *int         `json:"template_id,omitempty"`
	OutputFormat OutputFormat `json:"output_format"`
}

type BackgroundGenerateRequest struct {
	Category     Category `json:"category"`
	Mood         Mood     `json:"mood"`
	ColorScheme  string   `json:"color_scheme,omitempty"`
	CustomPrompt string   `json:"custom_prompt,omitempty"`
}

type BackgroundGenerateResponse struct {
	ImageURL string `json:"image_url"`
}

type CreateTemplateRequest struct {
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Description  string   `json:"description,omitempty"`
	HTMLTemplate string   `json:"html_template"`
}

type DeleteTemplateResponse struct {
	Success bool `json:"success"`
}
