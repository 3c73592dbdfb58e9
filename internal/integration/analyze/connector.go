package analyze

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

// AnalyzeReference asks the backend to analyze a reference detail page.
func (c *Connector) AnalyzeReference(ctx context.Context, url string) (*entity.AnalysisResult, error) {
	ctxzap.Info(ctx, "analyzing reference page", zap.String("url", url))

	var result entity.AnalysisResult
	req := &entity.AnalyzeRequest{URL: url}
	if err := c.connector.DoRequest(ctx, http.MethodPost, "/api/analyze/reference", req, &result); err != nil {
		return nil, fmt.Errorf("analyze reference: %w", err)
	}

	ctxzap.Info(ctx, "reference analyzed",
		zap.String("layout_pattern", result.LayoutPattern),
		zap.Int("section_count", len(result.Sections)),
	)

	return &result, nil
}
