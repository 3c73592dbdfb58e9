package analyze

import (
	"context"

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

func (m *MockConnector) AnalyzeReference(ctx context.Context, referenceURL string) (*entity.AnalysisResult, error) {
	ctxzap.Info(ctx, "[MOCK] analyzing reference", zap.String("url", referenceURL))

	return &entity.AnalysisResult{
		LayoutPattern: "hero-features-reviews",
		ColorScheme:   map[string]string{"primary": "#ffffff", "accent": "#2f6fed"},
		Sections:      []string{"hero", "features", "reviews"},
		Highlights:    []string{"깔끔한 레이아웃", "밝은 색감"},
		ToneAndManner: "친근하고 신뢰감 있는 톤",
	}, nil
}
