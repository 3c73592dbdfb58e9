package entity

import (
	"fmt"
	"time"
)

type SessionStatus string

// Session status as reported by the backend.
const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
)

type InterviewStatus string

// Interview status is the client-side lifecycle of one wizard run.
// idle -> loading -> in_progress -> {completed, error}; only Reset returns to idle.
const (
	InterviewStatusIdle       InterviewStatus = "idle"
	InterviewStatusLoading    InterviewStatus = "loading"
	InterviewStatusInProgress InterviewStatus = "in_progress"
	InterviewStatusCompleted  InterviewStatus = "completed"
	InterviewStatusError      InterviewStatus = "error"
)

type GenerationStatus string

const (
	GenerationStatusIdle       GenerationStatus = "idle"
	GenerationStatusGenerating GenerationStatus = "generating"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusError      GenerationStatus = "error"
)

type InputType string

const (
	InputTypeText        InputType = "text"
	InputTypeSelect      InputType = "select"
	InputTypeMultiselect InputType = "multiselect"
	InputTypeImageUpload InputType = "image_upload"
	// InputTypeComplete is a sentinel: the question sequence has ended.
	// It is not a real question and must never be rendered as one.
	InputTypeComplete InputType = "complete"
)

func (it InputType) Validate() error {
	switch it {
	case InputTypeText, InputTypeSelect, InputTypeMultiselect, InputTypeImageUpload, InputTypeComplete:
		return nil
	default:
		return fmt.Errorf("unknown input type: %s", it)
	}
}

type Category string

const (
	CategoryFashion     Category = "fashion"
	CategoryBeauty      Category = "beauty"
	CategoryFood        Category = "food"
	CategoryElectronics Category = "electronics"
	CategoryHome        Category = "home"
	CategoryOther       Category = "other"
)

func (c Category) Validate() error {
	switch c {
	case CategoryFashion, CategoryBeauty, CategoryFood, CategoryElectronics, CategoryHome, CategoryOther:
		return nil
	default:
		return fmt.Errorf("unknown category: %s", c)
	}
}

type Mood string

const (
	MoodLuxury       Mood = "luxury"
	MoodCasual       Mood = "casual"
	MoodCute         Mood = "cute"
	MoodSimple       Mood = "simple"
	MoodProfessional Mood = "professional"
)

type OutputFormat string

const (
	OutputFormatHTML  OutputFormat = "html"
	OutputFormatImage OutputFormat = "image"
	OutputFormatBoth  OutputFormat = "both"
)

// Session mirrors the backend-owned interview session. The client only ever
// holds the identifier and a transcript mirror; context is the accumulated
// field_name -> answer mapping.
type Session struct {
	ID        int            `json:"id"`
	Status    SessionStatus  `json:"status"`
	Context   map[string]any `json:"context"`
	CreatedAt time.Time      `json:"created_at"`
}

// Question is transient and never persisted.
type Question struct {
	Question  string    `json:"question"`
	Options   []string  `json:"options,omitempty"`
	InputType InputType `json:"input_type"`
	FieldName string    `json:"field_name"`
}

type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// ChatMessage is a client-only transcript entry. Messages are append-only:
// insertion order is display order and entries are never mutated or removed.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	FieldName string    `json:"field_name,omitempty"`
	InputType InputType `json:"input_type,omitempty"`
	Options   []string  `json:"options,omitempty"`
}

// GenerationResult is the backend's answer to a generate request. At most one
// result is cached per session; regeneration overwrites it.
type GenerationResult struct {
	ID          int    `json:"id"`
	HTMLContent string `json:"html_content,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	PreviewURL  string `json:"preview_url"`
}

// Template is read-only from the client's perspective.
type Template struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	IsDefault   bool     `json:"is_default"`
}

// TemplateDetail is a template plus its raw HTML body, fetched lazily.
type TemplateDetail struct {
	Template
	HTMLTemplate string `json:"html_template"`
}

// AnalysisResult describes a reference page analyzed by the backend.
type AnalysisResult struct {
	LayoutPattern string            `json:"layout_pattern"`
	ColorScheme   map[string]string `json:"color_scheme"`
	Sections      []string          `json:"sections"`
	Highlights    []string          `json:"highlights"`
	ToneAndManner string            `json:"tone_and_manner"`
	ScreenshotURL string            `json:"screenshot_url,omitempty"`
}
