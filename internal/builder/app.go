package builder

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyeonw/detailpage-client/internal/preview"
	"github.com/hyeonw/detailpage-client/internal/wizard"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// App represents the application with all its components
type App struct {
	wizard  *wizard.Wizard
	preview *preview.Server
	logger  *zap.Logger
}

// Run drives the interactive wizard and, when enabled, keeps the preview
// server up afterwards until an interrupt arrives.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(ctxzap.ToContext(context.Background(), a.logger))
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		a.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := a.wizard.Run(ctx); err != nil {
		return err
	}

	if a.preview == nil {
		return nil
	}

	errChan := make(chan error, 1)
	go func() {
		if err := a.preview.Start(); err != nil {
			errChan <- err
		}
	}()
	a.logger.Info("Preview available", zap.String("url", "http://"+a.preview.Addr()+"/"))

	select {
	case err := <-errChan:
		a.logger.Error("Preview server error", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a.logger.Info("Shutting down preview server gracefully")
	if err := a.preview.Shutdown(ctx); err != nil {
		a.logger.Error("Preview server shutdown error", zap.Error(err))
		return err
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
