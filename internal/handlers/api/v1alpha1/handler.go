// Package v1alpha1 exposes the crew service over a JSON HTTP API
package v1alpha1

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/breachside/crew-api/internal/errors"
	crewservice "github.com/breachside/crew-api/internal/services/crew"
)

// Handler serves the v1alpha1 crew routes
type Handler struct {
	service crewservice.Service
}

// Config holds the dependencies for the handler
type Config struct {
	Service crewservice.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	return vb.Build()
}

// New creates a new v1alpha1 handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Handler{service: cfg.Service}, nil
}

// RegisterRoutes attaches every crew route to the mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/crews", h.createCrew)
	mux.HandleFunc("GET /v1alpha1/crews/{id}", h.getCrew)
	mux.HandleFunc("DELETE /v1alpha1/crews/{id}", h.deleteCrew)
	mux.HandleFunc("GET /v1alpha1/players/{playerID}/crews", h.listCrews)

	mux.HandleFunc("POST /v1alpha1/crews/{id}/models", h.addModel)
	mux.HandleFunc("DELETE /v1alpha1/crews/{id}/models/{rosterID}", h.removeModel)
	mux.HandleFunc("DELETE /v1alpha1/crews/{id}/models", h.clearRoster)

	mux.HandleFunc("PUT /v1alpha1/crews/{id}/strategy", h.setStrategy)
	mux.HandleFunc("PUT /v1alpha1/crews/{id}/scheme-pool", h.setSchemePool)
	mux.HandleFunc("PUT /v1alpha1/crews/{id}/schemes", h.chooseSchemes)

	mux.HandleFunc("GET /v1alpha1/crews/{id}/math", h.getCrewMath)
	mux.HandleFunc("GET /v1alpha1/crews/{id}/synergies", h.analyzeSynergies)
	mux.HandleFunc("GET /v1alpha1/crews/{id}/gaps", h.analyzeGaps)
	mux.HandleFunc("GET /v1alpha1/crews/{id}/scheme-paths", h.recommendSchemePaths)

	mux.HandleFunc("POST /v1alpha1/crews/{id}/suggest", h.suggestCrew)
	mux.HandleFunc("POST /v1alpha1/crews/{id}/counter", h.generateCounterCrew)

	mux.HandleFunc("POST /v1alpha1/crews/{id}/save", h.saveCrew)
	mux.HandleFunc("POST /v1alpha1/crews/load", h.loadCrew)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the structured error taxonomy onto HTTP statuses.
// Unstructured errors come out as a 500 with a generic body so internal
// details never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
		writeJSON(w, status, map[string]any{"code": string(errors.CodeInternal), "error": "internal error"})
		return
	}

	writeJSON(w, status, map[string]any{"code": string(code), "error": errors.GetMessage(err)})
}

// decodeJSON decodes the request body. An empty body decodes to the
// zero value so optional-field requests can be posted without one.
func decodeJSON(r *http.Request, out any) error {
	err := json.NewDecoder(r.Body).Decode(out)
	if err != nil && err != io.EOF {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}
