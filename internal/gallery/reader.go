package gallery

import (
	"context"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/hyeonw/detailpage-client/internal/entity"
	pkgRetry "github.com/hyeonw/detailpage-client/internal/pkg/retry"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// BackendConnector is the slice of the backend the reader needs.
type BackendConnector interface {
	ListTemplates(ctx context.Context, category *entity.Category) ([]entity.Template, error)
	GetTemplate(ctx context.Context, id int) (*entity.TemplateDetail, error)
	CreateTemplate(ctx context.Context, req *entity.CreateTemplateRequest) (*entity.Template, error)
	DeleteTemplate(ctx context.Context, id int) error
}

// Reader provides read-mostly catalog access. Listing is passed through with
// retries (reads are safe to repeat); template detail is fetched lazily and
// cached with a TTL so an opened preview hits the backend at most once per
// window. Selecting a template never clones or mutates it; only the id is
// threaded into the interview flow.
type Reader struct {
	backend   BackendConnector
	detail    *gocache.Cache
	retryOpts []retry.Option
	logger    *zap.Logger
}

func NewReader(backend BackendConnector, retryCfg *pkgRetry.RetryConfig, detailTTL time.Duration, logger *zap.Logger) *Reader {
	return &Reader{
		backend:   backend,
		detail:    gocache.New(detailTTL, 2*detailTTL),
		retryOpts: retryCfg.ToRetryOptions(),
		logger:    logger,
	}
}

// List returns all templates, optionally filtered server-side by category.
func (r *Reader) List(ctx context.Context, category *entity.Category) ([]entity.Template, error) {
	return retry.DoWithData(func() ([]entity.Template, error) {
		return r.backend.ListTemplates(ctx, category)
	}, append(r.retryOpts, retry.Context(ctx))...)
}

// Detail returns one template with its raw HTML body. The fetch is lazy:
// it happens only when a preview is actually opened, and repeat opens
// within the TTL reuse the cached detail.
func (r *Reader) Detail(ctx context.Context, id int) (*entity.TemplateDetail, error) {
	key := strconv.Itoa(id)
	if cached, ok := r.detail.Get(key); ok {
		ctxzap.Debug(ctx, "template detail cache hit", zap.Int("template_id", id))
		return cached.(*entity.TemplateDetail), nil
	}

	detail, err := retry.DoWithData(func() (*entity.TemplateDetail, error) {
		return r.backend.GetTemplate(ctx, id)
	}, append(r.retryOpts, retry.Context(ctx))...)
	if err != nil {
		return nil, err
	}

	r.detail.SetDefault(key, detail)
	return detail, nil
}

// Create registers a new template. Writes are not retried.
func (r *Reader) Create(ctx context.Context, req *entity.CreateTemplateRequest) (*entity.Template, error) {
	return r.backend.CreateTemplate(ctx, req)
}

// Delete removes a template and drops any cached detail for it.
func (r *Reader) Delete(ctx context.Context, id int) error {
	if err := r.backend.DeleteTemplate(ctx, id); err != nil {
		return err
	}
	r.detail.Delete(strconv.Itoa(id))
	return nil
}
