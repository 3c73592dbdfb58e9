package interview

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/hyeonw/detailpage-client/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Controller drives the strictly sequential question/answer exchange with
// the backend and maintains the visible transcript. The protocol is
// request-question -> submit-answer -> request-question, never pipelined:
// at most one question is outstanding at any time, and the next fetch is
// gated on the answer being acknowledged.
type Controller struct {
	state     *Store
	backend   BackendConnector
	validator *validator.Validator
	notifier  Notifier
	logger    *zap.Logger

	submitInFlight atomic.Bool
}

func NewController(
	state *Store,
	backend BackendConnector,
	v *validator.Validator,
	notifier Notifier,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		state:     state,
		backend:   backend,
		validator: v,
		notifier:  notifier,
		logger:    logger,
	}
}

// State returns a snapshot of the interview state for rendering.
func (c *Controller) State() State {
	return c.state.Snapshot()
}

// StartSession creates a new backend session and requests the first
// question. Session-creation failure is the one failure that moves the
// status machine to error; it is not retried automatically.
func (c *Controller) StartSession(ctx context.Context, referenceURL string) error {
	if status := c.state.Snapshot().Status; status != entity.InterviewStatusIdle {
		return fmt.Errorf("start session: interview is %s, reset first", status)
	}

	c.state.SetStatus(entity.InterviewStatusLoading)

	session, err := c.backend.CreateSession(ctx, &entity.CreateSessionRequest{ReferenceURL: referenceURL})
	if err != nil {
		ctxzap.Error(ctx, "failed to create session", zap.Error(err))
		c.state.SetStatus(entity.InterviewStatusError)
		c.state.SetError(err.Error())
		c.notifier.Notify(ctx, ErrMsgSessionCreate)
		return err
	}

	c.state.SetSessionID(session.ID)
	c.state.SetStatus(entity.InterviewStatusInProgress)

	ctxzap.Info(ctx, "interview session started", zap.Int("session_id", session.ID))

	return c.FetchNextQuestion(ctx)
}

// FetchNextQuestion requests the next question for the active session.
// On a transport failure the status stays in_progress and the error is
// recorded in state; calling FetchNextQuestion again is the user-driven
// retry path. Receiving the complete sentinel ends the interview: status
// becomes completed and exactly one terminal assistant message is appended.
func (c *Controller) FetchNextQuestion(ctx context.Context) error {
	snap := c.state.Snapshot()
	if snap.SessionID == 0 {
		return entity.ErrNoSession
	}
	if snap.Status == entity.InterviewStatusCompleted {
		return entity.ErrInterviewDone
	}

	question, err := c.backend.NextQuestion(ctx, snap.SessionID)
	if err != nil {
		ctxzap.Error(ctx, "failed to fetch next question", zap.Error(err))
		c.state.SetError(err.Error())
		c.notifier.Notify(ctx, ErrMsgQuestionLoad)
		return err
	}

	if question.InputType == entity.InputTypeComplete {
		c.state.SetStatus(entity.InterviewStatusCompleted)
		c.state.SetCurrentQuestion(nil)
		c.state.SetError("")
		c.state.AddMessage(entity.ChatMessage{
			Role:    entity.RoleAssistant,
			Content: MsgInterviewComplete,
		})

		ctxzap.Info(ctx, "interview completed", zap.Int("session_id", snap.SessionID))
		return nil
	}

	c.state.SetCurrentQuestion(question)
	c.state.SetError("")
	c.state.AddMessage(entity.ChatMessage{
		Role:      entity.RoleAssistant,
		Content:   question.Question,
		FieldName: question.FieldName,
		InputType: question.InputType,
		Options:   question.Options,
	})

	return nil
}

// SubmitAnswer normalizes and posts one answer for the current question,
// then fetches the next question. The fetch runs only after the answer POST
// acknowledged; a failed submit leaves the answer unconfirmed and does not
// advance the exchange. A second SubmitAnswer while one is in flight is
// rejected outright.
func (c *Controller) SubmitAnswer(ctx context.Context, value entity.AnswerValue) error {
	if !c.submitInFlight.CompareAndSwap(false, true) {
		return entity.ErrSubmitInFlight
	}
	defer c.submitInFlight.Store(false)

	snap := c.state.Snapshot()
	if snap.SessionID == 0 {
		return entity.ErrNoSession
	}
	if snap.Status == entity.InterviewStatusCompleted {
		return entity.ErrInterviewDone
	}
	question := snap.CurrentQuestion
	if question == nil {
		return entity.ErrNoCurrentQuestion
	}

	isSkip := value.Kind == entity.AnswerKindText && value.Text == SkipSentinel
	if !isSkip {
		if err := c.validator.ValidateAnswer(question, value); err != nil {
			return err
		}
	}

	wire, display := normalizeAnswer(value)

	c.state.AddMessage(entity.ChatMessage{
		Role:    entity.RoleUser,
		Content: display,
	})
	c.state.UpdateContext(question.FieldName, wire)
	c.state.IncrementProgress()
	c.state.SetCurrentQuestion(nil)

	resp, err := c.backend.SubmitAnswer(ctx, &entity.SubmitAnswerRequest{
		SessionID: snap.SessionID,
		FieldName: question.FieldName,
		Value:     wire,
	})
	if err != nil {
		ctxzap.Error(ctx, "failed to submit answer",
			zap.Error(err),
			zap.String("field_name", question.FieldName),
		)
		c.state.SetError(err.Error())
		c.notifier.Notify(ctx, ErrMsgAnswerSubmit)
		return err
	}
	if !resp.Success {
		err := fmt.Errorf("submit answer: backend rejected field %s", resp.FieldName)
		c.state.SetError(err.Error())
		c.notifier.Notify(ctx, ErrMsgAnswerSubmit)
		return err
	}

	ctxzap.Info(ctx, "answer accepted",
		zap.String("field_name", question.FieldName),
		zap.Int("progress", snap.Progress+1),
	)

	return c.FetchNextQuestion(ctx)
}

// Reset clears all local interview state back to idle. The backend is not
// notified; the REST contract has no session-cancel operation, so abandoned
// sessions age out server-side.
func (c *Controller) Reset() {
	c.state.Reset()
}
