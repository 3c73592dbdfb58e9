package interview

import (
	"context"

	"github.com/hyeonw/detailpage-client/internal/entity"
)

// BackendConnector is the slice of the backend the controller needs.
type BackendConnector interface {
	CreateSession(ctx context.Context, req *entity.CreateSessionRequest) (*entity.Session, error)
	NextQuestion(ctx context.Context, sessionID int) (*entity.Question, error)
	SubmitAnswer(ctx context.Context, req *entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error)
}

// Notifier surfaces transient user-visible notifications. Failures are
// reported here; the controller never retries on its own.
type Notifier interface {
	Notify(ctx context.Context, text string)
}
