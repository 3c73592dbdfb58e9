package templates

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

// ListTemplates returns all templates, optionally filtered server-side by category.
func (c *Connector) ListTemplates(ctx context.Context, category *entity.Category) ([]entity.Template, error) {
	var opts []pkghttp.RequestOpt
	if category != nil {
		opts = append(opts, pkghttp.WithQueryParam("category", string(*category)))
	}

	var templates []entity.Template
	if err := c.connector.DoRequest(ctx, http.MethodGet, "/api/templates", nil, &templates, opts...); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	ctxzap.Debug(ctx, "templates listed", zap.Int("count", len(templates)))

	return templates, nil
}

// GetTemplate fetches one template including its raw HTML body.
func (c *Connector) GetTemplate(ctx context.Context, id int) (*entity.TemplateDetail, error) {
	var detail entity.TemplateDetail
	endpoint := fmt.Sprintf("/api/templates/%d", id)
	if err := c.connector.DoRequest(ctx, http.MethodGet, endpoint, nil, &detail); err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	return &detail, nil
}

// CreateTemplate registers a new template.
func (c *Connector) CreateTemplate(ctx context.Context, req *entity.CreateTemplateRequest) (*entity.Template, error) {
	ctxzap.Info(ctx, "creating template", zap.String("name", req.Name))

	var created entity.Template
	if err := c.connector.DoRequest(ctx, http.MethodPost, "/api/templates", req, &created); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	return &created, nil
}

// DeleteTemplate removes a template.
func (c *Connector) DeleteTemplate(ctx context.Context, id int) error {
	ctxzap.Info(ctx, "deleting template", zap.Int("template_id", id))

	var resp entity.DeleteTemplateResponse
	endpoint := fmt.Sprintf("/api/templates/%d", id)
	if err := c.connector.DoRequest(ctx, http.MethodDelete, endpoint, nil, &resp); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("delete template: backend reported failure")
	}

	return nil
}
