package evaluation

import (
	"context"
	"net/http"

	"github.com/dossierimmo/form-gateway/internal/config"
	"github.com/dossierimmo/form-gateway/internal/contract"
	"github.com/dossierimmo/form-gateway/internal/integration/common"
	"github.com/dossierimmo/form-gateway/pkg/httpclient"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector talks to the remote evaluation service. The service is an opaque
// collaborator: this side assembles and relays, the service decides.
type Connector struct {
	config    config.EvaluationConnectorConfig
	connector *httpclient.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.EvaluationConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Evaluate submits one application envelope and returns the parsed body.
// The body stays loosely typed so the renderer can probe alias fields across
// contract generations. Non-2xx responses surface as *httpclient.StatusError
// with the raw body; transport failures as *httpclient.NetworkError.
func (c *Connector) Evaluate(ctx context.Context, req *contract.EvaluationRequest, requestID string) (map[string]any, error) {
	ctxzap.Info(ctx, "submitting application to evaluation service")

	var body map[string]any
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.EvaluateEndpoint, req, &body,
		httpclient.WithHeader("X-Request-ID", requestID))
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "assessment received", zap.Int("field_count", len(body)))

	return body, nil
}

// CurrentRates fetches the reference-rates bag.
func (c *Connector) CurrentRates(ctx context.Context) (map[string]any, error) {
	ctxzap.Info(ctx, "fetching current rates")

	var body map[string]any
	err := c.connector.DoRequest(ctx, http.MethodGet, c.config.RatesEndpoint, nil, &body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Health pings the service; used only by the startup readiness probe.
func (c *Connector) Health(ctx context.Context) error {
	return c.connector.DoRequest(ctx, http.MethodGet, c.config.HealthEndpoint, nil, nil)
}
