// Package dossier drives the two user flows: submitting an application for
// evaluation and fetching current reference rates. Both are stateless per
// invocation; a failure is terminal for that invocation and the next one
// starts clean.
package dossier

import (
	"context"
	"errors"

	"github.com/dossierimmo/form-gateway/internal/form"
	"github.com/dossierimmo/form-gateway/internal/payload"
	"github.com/dossierimmo/form-gateway/internal/pkg/logger"
	"github.com/dossierimmo/form-gateway/internal/render"
	"github.com/dossierimmo/form-gateway/pkg/httpclient"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Usecase struct {
	conn EvaluationConnector
}

func NewUsecase(conn EvaluationConnector) *Usecase {
	return &Usecase{conn: conn}
}

// Submit runs the evaluate flow for one form submission and returns the text
// block for the result region. Concurrent submissions are not coalesced;
// each call is an independent request and the last one to resolve wins the
// display. Nothing is retried.
func (u *Usecase) Submit(ctx context.Context, values form.Values) string {
	submissionID := uuid.NewString()
	ctx = logger.AddFields(ctx, zap.String("submission_id", submissionID))

	req := payload.Build(values)

	body, err := u.conn.Evaluate(ctx, req, submissionID)
	if err != nil {
		return u.renderFailure(ctx, err)
	}

	return render.Evaluation(body)
}

// Rates runs the rates flow and returns the text block for its region.
func (u *Usecase) Rates(ctx context.Context) string {
	body, err := u.conn.CurrentRates(ctx)
	if err != nil {
		return u.renderFailure(ctx, err)
	}

	return render.Rates(body)
}

// renderFailure maps the failure taxonomy onto display text: a structured
// service rejection keeps its status and body, anything where no response
// was obtained becomes the generic error line.
func (u *Usecase) renderFailure(ctx context.Context, err error) string {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		ctxzap.Info(ctx, "service rejected the request",
			zap.Int("status", statusErr.StatusCode),
		)
		return render.ServiceError(statusErr.StatusCode, statusErr.Body)
	}

	ctxzap.Error(ctx, "request failed without a response", zap.Error(err))
	return render.TransportError(err)
}
