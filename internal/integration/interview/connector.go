package interview

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hyeonw/detailpage-client/internal/config"
	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/hyeonw/detailpage-client/internal/integration/common"
	pkghttp "github.com/hyeonw/detailpage-client/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.BackendConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg, logger),
		logger:    logger,
	}
}

// CreateSession starts a new interview session on the backend.
func (c *Connector) CreateSession(ctx context.Context, req *entity.CreateSessionRequest) (*entity.Session, error) {
	ctxzap.Info(ctx, "creating interview session")

	var session entity.Session
	err := c.connector.DoRequest(ctx, http.MethodPost, "/api/interview/sessions", req, &session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	ctxzap.Info(ctx, "session created", zap.Int("session_id", session.ID))

	return &session, nil
}

// GetSession fetches the backend's view of a session.
func (c *Connector) GetSession(ctx context.Context, sessionID int) (*entity.Session, error) {
	var session entity.Session
	endpoint := fmt.Sprintf("/api/interview/sessions/%d", sessionID)
	if err := c.connector.DoRequest(ctx, http.MethodGet, endpoint, nil, &session); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &session, nil
}

// NextQuestion requests the next question for a session. The backend answers
// with the complete sentinel once the sequence is exhausted.
func (c *Connector) NextQuestion(ctx context.Context, sessionID int) (*entity.Question, error) {
	var question entity.Question
	endpoint := fmt.Sprintf("/api/interview/sessions/%d/next-question", sessionID)
	if err := c.connector.DoRequest(ctx, http.MethodGet, endpoint, nil, &question); err != nil {
		return nil, fmt.Errorf("next question: %w", err)
	}

	if err := question.InputType.Validate(); err != nil {
		return nil, fmt.Errorf("next question: %w", err)
	}

	ctxzap.Info(ctx, "question received",
		zap.String("field_name", question.FieldName),
		zap.String("input_type", string(question.InputType)),
	)

	return &question, nil
}

// SubmitAnswer posts one answer for the session's current question.
func (c *Connector) SubmitAnswer(ctx context.Context, req *entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error) {
	ctxzap.Info(ctx, "submitting answer", zap.String("field_name", req.FieldName))

	var resp entity.SubmitAnswerResponse
	endpoint := fmt.Sprintf("/api/interview/sessions/%d/answer", req.SessionID)
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	return &resp, nil
}
