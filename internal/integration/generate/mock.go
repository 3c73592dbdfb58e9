package generate

import (
	"context"
	"fmt"

	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) GenerateDetailPage(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerationResult, error) {
	ctxzap.Info(ctx, "[MOCK] generating detail page", zap.Int("session_id", req.SessionID))

	return &entity.GenerationResult{
		ID:          req.SessionID,
		HTMLContent: fmt.Sprintf("<!DOCTYPE html><html><body><h1>상세페이지 (세션 %d)</h1></body></html>", req.SessionID),
		PreviewURL:  fmt.Sprintf("/preview/%d", req.SessionID),
	}, nil
}

func (m *MockConnector) GenerateBackground(ctx context.Context, req *entity.BackgroundGenerateRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating background image")

	return fmt.Sprintf("https://example.invalid/backgrounds/%s-%s.png", req.Category, req.Mood), nil
}
