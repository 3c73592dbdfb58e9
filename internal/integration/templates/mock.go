package templates

import (
	"context"
	"sync"

	"github.com/hyeonw/detailpage-client/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type MockConnector struct {
	logger *zap.Logger

	mu      sync.Mutex
	nextID  int
	catalog map[int]*entity.TemplateDetail
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	m := &MockConnector{
		logger:  logger,
		nextID:  3,
		catalog: make(map[int]*entity.TemplateDetail),
	}

	m.catalog[1] = &entity.TemplateDetail{
		Template: entity.Template{
			ID: 1, Name: "클래식 화이트", Category: entity.CategoryOther, IsDefault: true,
		},
		HTMLTemplate: "<!DOCTYPE html><html><body><main>{{content}}</main></body></html>",
	}
	m.catalog[2] = &entity.TemplateDetail{
		Template: entity.Template{
			ID: 2, Name: "뷰티 글로우", Category: entity.CategoryBeauty,
			Description: "화장품 상세페이지용 템플릿",
		},
		HTMLTemplate: "<!DOCTYPE html><html><body><section>{{content}}</section></body></html>",
	}

	return m
}

func (m *MockConnector) ListTemplates(ctx context.Context, category *entity.Category) ([]entity.Template, error) {
	ctxzap.Debug(ctx, "[MOCK] listing templates")

	m.mu.Lock()
	defer m.mu.Unlock()

	var templates []entity.Template
	for _, detail := range m.catalog {
		if category != nil && detail.Category != *category {
			continue
		}
		templates = append(templates, detail.Template)
	}
	return templates, nil
}

func (m *MockConnector) GetTemplate(ctx context.Context, id int) (*entity.TemplateDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	detail, ok := m.catalog[id]
	if !ok {
		return nil, entity.ErrTemplateNotFound
	}
	copied := *detail
	return &copied, nil
}

func (m *MockConnector) CreateTemplate(ctx context.Context, req *entity.CreateTemplateRequest) (*entity.Template, error) {
	ctxzap.Info(ctx, "[MOCK] creating template", zap.String("name", req.Name))

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	detail := &entity.TemplateDetail{
		Template: entity.Template{
			ID: id, Name: req.Name, Category: req.Category, Description: req.Description,
		},
		HTMLTemplate: req.HTMLTemplate,
	}
	m.catalog[id] = detail

	return &detail.Template, nil
}

func (m *MockConnector) DeleteTemplate(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.catalog[id]; !ok {
		return entity.ErrTemplateNotFound
	}
	delete(m.catalog, id)
	return nil
}
