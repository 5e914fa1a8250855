package dossier

import (
	"net/http"

	"github.com/dossierimmo/form-gateway/internal/pkg/logger"
	"github.com/dossierimmo/form-gateway/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase DossierUsecase
}

func NewHandler(usecase DossierUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Evaluate handles POST /dossier/evaluer - submit the form for evaluation.
// The response is always the text block for the result region, HTTP 200 even
// when the upstream evaluation failed: the block itself carries the error
// line, exactly as the page displays it.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Evaluate")

	if err := r.ParseForm(); err != nil {
		ctxzap.Error(ctx, "failed to parse form", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid form data")
		return
	}

	ctxzap.Info(ctx, "form submitted", zap.Int("field_count", len(r.PostForm)))

	text := h.usecase.Submit(ctx, r.PostForm)

	response.Text(w, http.StatusOK, text)
}

// Rates handles GET /dossier/taux - fetch and render current reference rates.
func (h *Handler) Rates(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Rates")

	text := h.usecase.Rates(ctx)

	response.Text(w, http.StatusOK, text)
}
