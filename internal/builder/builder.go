package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/dossierimmo/form-gateway/internal/api"
	dossierapi "github.com/dossierimmo/form-gateway/internal/api/dossier"
	"github.com/dossierimmo/form-gateway/internal/api/middleware"
	"github.com/dossierimmo/form-gateway/internal/config"
	"github.com/dossierimmo/form-gateway/internal/integration/evaluation"
	"github.com/dossierimmo/form-gateway/internal/usecase/dossier"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
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
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("evaluation_service", cfg.EvaluationConnectorCfg.Url),
	)

	evaluationConn := evaluation.NewConnector(cfg.EvaluationConnectorCfg, logger)

	// Probe the evaluation service so deploy-time misconfiguration shows up
	// immediately. The gateway still starts on failure: the user flows render
	// their own error lines when the service stays unreachable.
	waitForEvaluationService(evaluationConn, cfg, logger)

	dossierUsecase := dossier.NewUsecase(evaluationConn)
	dossierHandler := dossierapi.NewHandler(dossierUsecase)

	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimitCfg.PerMinute,
		cfg.RateLimitCfg.Burst,
		logger,
	)

	router := api.SetupRouter(dossierHandler, rateLimiter, logger)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{
		server: server,
		logger: logger,
	}, nil
}

func waitForEvaluationService(conn *evaluation.Connector, cfg *config.Config, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := append(
		cfg.EvaluationConnectorCfg.Readiness.ToRetryOptions(),
		retry.Context(ctx),
	)

	err := retry.Do(func() error {
		return conn.Health(ctx)
	}, opts...)
	if err != nil {
		logger.Warn("evaluation service not reachable at startup", zap.Error(err))
		return
	}

	logger.Info("evaluation service is reachable")
}

func setupLogger(level, environment string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zapCfg zap.Config
	switch environment {
	case "prod", "production":
		zapCfg = zap.NewProductionConfig()
	default:
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}
