package dossier

import (
	"context"

	"github.com/dossierimmo/form-gateway/internal/form"
)

// DossierUsecase runs the two user flows and returns display text.
type DossierUsecase interface {
	Submit(ctx context.Context, values form.Values) string
	Rates(ctx context.Context) string
}
