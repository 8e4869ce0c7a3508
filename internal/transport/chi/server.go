// Package chi exposes the HTTP API: the query endpoint, the ingest
// endpoint, health and metrics. Error responses use a flat
// {error, details} envelope.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/keepstack/keepstack/internal/domain"
	healthuc "github.com/keepstack/keepstack/internal/usecase/health"
	ingestuc "github.com/keepstack/keepstack/internal/usecase/ingest"
)

// queryService answers questions about a user's saved content.
type queryService interface {
	Ask(ctx context.Context, q domain.Query) (domain.Answer, error)
}

// ingestService indexes saved content items.
type ingestService interface {
	Save(ctx context.Context, userID string, item domain.ContentItem) (ingestuc.SaveResult, error)
}

// healthService aggregates component health checks.
type healthService interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server implements the HTTP API.
type Server struct {
	query         queryService
	ingest        ingestService
	health        healthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(query queryService, ingest ingestService, health healthService, logger *zap.Logger) *Server {
	s := &Server{
		query:  query,
		ingest: ingest,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, "Invalid request"),
		sentinelHandler(domain.ErrGenerationFailed, http.StatusInternalServerError, "Failed to process query"),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, "Embedding provider unavailable"),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/v1/query", s.PostQuery)
	r.Post("/v1/items", s.PostItem)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

type queryRequest struct {
	UserID       string               `json:"userId"`
	Query        string               `json:"query"`
	SuggestEvent bool                 `json:"suggestEvent"`
	Items        []domain.ContentItem `json:"items,omitempty"`
}

type queryResponse struct {
	Answer         string                 `json:"answer"`
	Sources        []domain.Source        `json:"sources"`
	SuggestedEvent *domain.SuggestedEvent `json:"suggestedEvent,omitempty"`
}

// PostQuery handles POST /v1/query.
func (s *Server) PostQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "invalid request body: "+err.Error())
		return
	}

	ans, err := s.query.Ask(r.Context(), domain.Query{
		UserID:       req.UserID,
		Text:         req.Query,
		SuggestEvent: req.SuggestEvent,
		Items:        req.Items,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{
		Answer:         ans.Text,
		Sources:        ans.Sources,
		SuggestedEvent: ans.SuggestedEvent,
	})
}

type ingestRequest struct {
	UserID string             `json:"userId"`
	Item   domain.ContentItem `json:"item"`
}

type ingestResponse struct {
	ItemID  string `json:"itemId"`
	Indexed bool   `json:"indexed"`
}

// PostItem handles POST /v1/items. A degraded embedding provider yields
// 202 with indexed=false; the item was accepted but carries no vector yet.
func (s *Server) PostItem(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "invalid request body: "+err.Error())
		return
	}

	res, err := s.ingest.Save(r.Context(), req.UserID, req.Item)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusCreated
	if !res.Indexed {
		status = http.StatusAccepted
	}
	writeJSON(w, status, ingestResponse{ItemID: res.ItemID, Indexed: res.Indexed})
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health. Degraded components keep the endpoint
// at 200; the body carries the per-component detail.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// safeDetails exposes the error text only for known sentinels.
func safeDetails(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrGenerationFailed,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	return ""
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, message, safeDetails(err))
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Internal error", "")
}
