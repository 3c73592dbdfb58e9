package generate

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

// GenerateDetailPage asks the backend to synthesize the detail page for a
// completed session. One shot; the caller decides about regeneration.
func (c *Connector) GenerateDetailPage(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerationResult, error) {
	ctxzap.Info(ctx, "generating detail page",
		zap.Int("session_id", req.SessionID),
		zap.String("output_format", string(req.OutputFormat)),
	)

	var result entity.GenerationResult
	if err := c.connector.DoRequest(ctx, http.MethodPost, "/api/generate/detail-page", req, &result); err != nil {
		return nil, fmt.Errorf("generate detail page: %w", err)
	}

	ctxzap.Info(ctx, "detail page generated",
		zap.Int("generation_id", result.ID),
		zap.Int("html_length", len(result.HTMLContent)),
	)

	return &result, nil
}

// GenerateBackground requests a background image for the given category/mood.
func (c *Connector) GenerateBackground(ctx context.Context, req *entity.BackgroundGenerateRequest) (string, error) {
	ctxzap.Info(ctx, "generating background image",
		zap.String("category", string(req.Category)),
		zap.String("mood", string(req.Mood)),
	)

	var resp entity.BackgroundGenerateResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, "/api/generate/background-image", req, &resp); err != nil {
		return "", fmt.Errorf("generate background: %w", err)
	}

	return resp.ImageURL, nil
}
