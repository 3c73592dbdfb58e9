package generation

import (
	"context"
	"sync/atomic"

	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// User-facing copy for generation outcomes.
const (
	MsgGenerated       = "상세페이지가 생성되었습니다!"
	ErrMsgEmptyContent = "HTML 콘텐츠가 비어있습니다."
	ErrMsgGenerate     = "생성에 실패했습니다. 다시 시도해주세요."
)

// BackendConnector is the slice of the backend the trigger needs.
type BackendConnector interface {
	GenerateDetailPage(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerationResult, error)
	GenerateBackground(ctx context.Context, req *entity.BackgroundGenerateRequest) (string, error)
}

// Notifier surfaces transient user-visible notifications.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// Trigger is the one-shot request/response wrapper around backend-side HTML
// synthesis. Regeneration re-invokes the same operation from any terminal
// state. Requests are fenced with a monotonically increasing token: when
// concurrent generations race, only the newest request's response is kept
// and stale responses are discarded.
type Trigger struct {
	state    *Store
	backend  BackendConnector
	notifier Notifier
	logger   *zap.Logger

	token atomic.Uint64
}

func NewTrigger(state *Store, backend BackendConnector, notifier Notifier, logger *zap.Logger) *Trigger {
	return &Trigger{
		state:    state,
		backend:  backend,
		notifier: notifier,
		logger:   logger,
	}
}

// State returns a snapshot of the generation state for rendering.
func (t *Trigger) State() State {
	return t.state.Snapshot()
}

// Generate issues a single generation request. A 2xx response with an empty
// HTML payload is an error in its own right ("empty content"), never a
// silent success.
func (t *Trigger) Generate(ctx context.Context, sessionID int, templateID *int, format entity.OutputFormat) error {
	if format == "" {
		format = entity.OutputFormatHTML
	}

	token := t.token.Add(1)
	t.state.SetStatus(entity.GenerationStatusGenerating)
	t.state.SetError("")

	result, err := t.backend.GenerateDetailPage(ctx, &entity.GenerateRequest{
		SessionID:    sessionID,
		TemplateID:   templateID,
		OutputFormat: format,
	})

	if t.token.Load() != token {
		ctxzap.Debug(ctx, "discarding stale generation response", zap.Uint64("token", token))
		return nil
	}

	if err != nil {
		ctxzap.Error(ctx, "generation failed", zap.Error(err), zap.Int("session_id", sessionID))
		t.state.SetStatus(entity.GenerationStatusError)
		t.state.SetError(err.Error())
		t.notifier.Notify(ctx, ErrMsgGenerate)
		return err
	}

	if format != entity.OutputFormatImage && result.HTMLContent == "" {
		t.state.SetStatus(entity.GenerationStatusError)
		t.state.SetError(ErrMsgEmptyContent)
		t.notifier.Notify(ctx, ErrMsgGenerate)
		return entity.ErrEmptyContent
	}

	t.state.SetResult(result)
	t.state.SetStatus(entity.GenerationStatusCompleted)
	t.notifier.Notify(ctx, MsgGenerated)

	ctxzap.Info(ctx, "generation completed",
		zap.Int("generation_id", result.ID),
		zap.Int("html_length", len(result.HTMLContent)),
	)

	return nil
}

// GenerateBackground requests a standalone background image and caches its URL.
func (t *Trigger) GenerateBackground(ctx context.Context, req *entity.BackgroundGenerateRequest) (string, error) {
	url, err := t.backend.GenerateBackground(ctx, req)
	if err != nil {
		t.notifier.Notify(ctx, ErrMsgGenerate)
		return "", err
	}

	t.state.SetImageURL(url)
	return url, nil
}

// Reset clears the generation state back to idle.
func (t *Trigger) Reset() {
	t.state.Reset()
}
