package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dossierimmo/form-gateway/internal/api"
	dossierapi "github.com/dossierimmo/form-gateway/internal/api/dossier"
	"github.com/dossierimmo/form-gateway/internal/api/middleware"
	"github.com/dossierimmo/form-gateway/internal/config"
	"github.com/dossierimmo/form-gateway/internal/integration/evaluation"
	"github.com/dossierimmo/form-gateway/internal/usecase/dossier"
	"go.uber.org/zap"
)

// gateway wires the full stack against a fake evaluation service.
func gateway(t *testing.T, upstream http.HandlerFunc) *httptest.Server {
	t.Helper()

	fakeService := httptest.NewServer(upstream)
	t.Cleanup(fakeService.Close)

	cfg := config.EvaluationConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			Url:                   fakeService.URL,
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           5 * time.Second,
			KeepAlive:             30 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
		},
		EvaluateEndpoint: "/api/evaluate",
		RatesEndpoint:    "/api/taux-actuels",
		HealthEndpoint:   "/api/health",
	}

	logger := zap.NewNop()
	usecase := dossier.NewUsecase(evaluation.NewConnector(cfg, logger))
	handler := dossierapi.NewHandler(usecase)
	limiter := middleware.NewRateLimiter(600, 100, logger)

	ts := httptest.NewServer(api.SetupRouter(handler, limiter, logger))
	t.Cleanup(ts.Close)
	return ts
}

func submitForm(t *testing.T, ts *httptest.Server, values url.Values) (int, string) {
	t.Helper()

	resp, err := http.PostForm(ts.URL+"/dossier/evaluer", values)
	if err != nil {
		t.Fatalf("POST /dossier/evaluer: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestGateway_EvaluateFlow(t *testing.T) {
	ts := gateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"feasibility_score": 87,
			"status": "favorable",
			"monthly_payment": 1104.902,
			"total_budget": 270500,
			"current_interest_rate": 0.0316,
			"recommendations": ["Augmentez votre apport"],
			"application_id": "a1b2"
		}`))
	})

	status, text := submitForm(t, ts, url.Values{
		"prix_bien":     {"250000"},
		"type_bien":     {"ancien"},
		"apport":        {"30000"},
		"duree":         {"25"},
		"statut_emploi": {"cdi"},
		"revenus":       {"3200"},
		"anciennete":    {"4"},
		"age":           {"34"},
		"enfants":       {"1"},
		"co_statut":     {"aucun"},
	})

	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	for _, want := range []string{
		"Score: 87/100 (favorable)",
		"Mensualité (estimée): 1104.90 €",
		"Budget total: 270500.00 €",
		"Taux utilisé: 3.16 %",
		"Recommandations: Augmentez votre apport",
		"Rapport PDF: /api/dossier/a1b2/pdf",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("result block missing %q:\n%s", want, text)
		}
	}
}

func TestGateway_ValidationFailurePassedThrough(t *testing.T) {
	ts := gateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"msg":"ensure this value is greater than 0"}]}`))
	})

	status, text := submitForm(t, ts, url.Values{"co_statut": {"aucun"}})

	// The gateway answers 200: the text block itself carries the error line.
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.HasPrefix(text, "Erreur (422):") {
		t.Errorf("text = %q, want Erreur (422) prefix", text)
	}
	if !strings.Contains(text, "ensure this value is greater than 0") {
		t.Errorf("service body not preserved:\n%s", text)
	}
}

func TestGateway_RatesFlow(t *testing.T) {
	ts := gateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/taux-actuels" {
			t.Errorf("unexpected upstream path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"taux": {"20_years": 0.035}, "rate_source": "Banque X", "rate_last_update": "2024-01-01"}`))
	})

	resp, err := http.Get(ts.URL + "/dossier/taux")
	if err != nil {
		t.Fatalf("GET /dossier/taux: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	text := string(body)

	for _, want := range []string{"20_years", "Source: Banque X", "Dernière mise à jour: 2024-01-01"} {
		if !strings.Contains(text, want) {
			t.Errorf("rates block missing %q:\n%s", want, text)
		}
	}
}

func TestGateway_CORSPreflight(t *testing.T) {
	ts := gateway(t, func(w http.ResponseWriter, r *http.Request) {})

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/dossier/evaluer", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS /dossier/evaluer: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("Access-Control-Allow-Methods = %q, must allow POST", got)
	}
}

func TestGateway_CORSHeadersOnActualRequest(t *testing.T) {
	ts := gateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"taux": {}}`))
	})

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/dossier/taux", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /dossier/taux: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestGateway_ServesFormPage(t *testing.T) {
	ts := gateway(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("content type = %q", got)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, `name="prix_bien"`) {
		t.Errorf("form page missing the price field")
	}
	// An unreachable gateway must render an error line into the region
	// instead of leaving a rejected promise unhandled.
	if !strings.Contains(page, "'Erreur: ' + err.message") {
		t.Errorf("page script does not handle fetch failures")
	}
}

func TestGateway_RateLimit(t *testing.T) {
	fakeService := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(fakeService.Close)

	cfg := config.EvaluationConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{Url: fakeService.URL},
		RatesEndpoint:    "/api/taux-actuels",
	}
	logger := zap.NewNop()
	handler := dossierapi.NewHandler(dossier.NewUsecase(evaluation.NewConnector(cfg, logger)))
	limiter := middleware.NewRateLimiter(1, 2, logger)

	ts := httptest.NewServer(api.SetupRouter(handler, limiter, logger))
	t.Cleanup(ts.Close)

	var last int
	for i := 0; i < 3; i++ {
		resp, err := http.Get(ts.URL + "/health")
		if err != nil {
			t.Fatalf("GET /health: %v", err)
		}
		resp.Body.Close()
		last = resp.StatusCode
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}
}
