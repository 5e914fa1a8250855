package dossier

import (
	"context"

	"github.com/dossierimmo/form-gateway/internal/contract"
)

// EvaluationConnector reaches the remote evaluation service.
type EvaluationConnector interface {
	Evaluate(ctx context.Context, req *contract.EvaluationRequest, requestID string) (map[string]any, error)
	CurrentRates(ctx context.Context) (map[string]any, error)
}
