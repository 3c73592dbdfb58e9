package builder

import (
	"fmt"
	"os"

	"github.com/hyeonw/detailpage-client/internal/config"
	"github.com/hyeonw/detailpage-client/internal/gallery"
	"github.com/hyeonw/detailpage-client/internal/generation"
	analyzeconn "github.com/hyeonw/detailpage-client/internal/integration/analyze"
	generateconn "github.com/hyeonw/detailpage-client/internal/integration/generate"
	interviewconn "github.com/hyeonw/detailpage-client/internal/integration/interview"
	templatesconn "github.com/hyeonw/detailpage-client/internal/integration/templates"
	"github.com/hyeonw/detailpage-client/internal/interview"
	"github.com/hyeonw/detailpage-client/internal/pkg/validator"
	"github.com/hyeonw/detailpage-client/internal/preview"
	"github.com/hyeonw/detailpage-client/internal/uploads"
	"github.com/hyeonw/detailpage-client/internal/wizard"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("backend_url", cfg.BackendCfg.Url),
	)

	// Connectors (with mock support)
	var interviewBackend interview.BackendConnector
	var generateBackend generation.BackendConnector
	var analyzeBackend wizard.AnalyzeConnector
	var templateBackend gallery.BackendConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for the backend")
		interviewBackend = interviewconn.NewMockConnector(logger)
		generateBackend = generateconn.NewMockConnector(logger)
		analyzeBackend = analyzeconn.NewMockConnector(logger)
		templateBackend = templatesconn.NewMockConnector(logger)
	} else {
		interviewBackend = interviewconn.NewConnector(cfg.BackendCfg, logger)
		generateBackend = generateconn.NewConnector(cfg.BackendCfg, logger)
		analyzeBackend = analyzeconn.NewConnector(cfg.BackendCfg, logger)
		templateBackend = templatesconn.NewConnector(cfg.BackendCfg, logger)
	}

	// State stores are injected, one instance per application
	interviewState := interview.NewStore(cfg.TotalSteps)
	generationState := generation.NewStore()

	notifier := wizard.NewConsoleNotifier(os.Stdout)
	answerValidator := validator.NewValidator(cfg.MaxImageFiles)

	controller := interview.NewController(interviewState, interviewBackend, answerValidator, notifier, logger)
	trigger := generation.NewTrigger(generationState, generateBackend, notifier, logger)
	galleryReader := gallery.NewReader(templateBackend, &cfg.CatalogRetryCfg, cfg.TemplateTTL, logger)
	uploadManager := uploads.NewManager(logger)

	wiz := wizard.New(
		controller,
		trigger,
		galleryReader,
		analyzeBackend,
		uploadManager,
		cfg,
		os.Stdin,
		os.Stdout,
		logger,
	)

	var previewServer *preview.Server
	if cfg.PreviewEnabled {
		previewServer = preview.NewServer(cfg.PreviewAddr, generationState, logger)
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		wizard:  wiz,
		preview: previewServer,
		logger:  logger,
	}, nil
}

// BuildTemplateCtl wires the pieces the template admin CLI needs.
func BuildTemplateCtl() (*gallery.Reader, *validator.Validator, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	templateBackend := templatesconn.NewConnector(cfg.BackendCfg, logger)
	galleryReader := gallery.NewReader(templateBackend, &cfg.CatalogRetryCfg, cfg.TemplateTTL, logger)

	return galleryReader, validator.NewValidator(cfg.MaxImageFiles), logger, nil
}
