// Package chi exposes the HTTP API: the natural-language query endpoint, the
// conversational passthrough, and the health endpoint.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/askdb/internal/domain"
	"github.com/kailas-cloud/askdb/internal/logger"
	healthuc "github.com/kailas-cloud/askdb/internal/usecase/health"
	queryuc "github.com/kailas-cloud/askdb/internal/usecase/query"
)

// Asker runs the query pipeline for one question.
type Asker interface {
	Ask(ctx context.Context, question string) (queryuc.Answer, error)
}

// Replier answers a free-form chat message.
type Replier interface {
	Reply(ctx context.Context, message string) (string, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server holds the HTTP handlers.
type Server struct {
	query  Asker
	chat   Replier
	health HealthChecker
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(query Asker, chat Replier, health HealthChecker, logger *zap.Logger) *Server {
	return &Server{query: query, chat: chat, health: health, logger: logger}
}

// Routes mounts all endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/chatbot", s.handleChatbot)
	r.Post("/api/chat", s.handleChat)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
}

type chatbotRequest struct {
	Question string `json:"question"`
}

type chatbotResponse struct {
	Question string           `json:"question"`
	Analysis any              `json:"analysis"`
	Results  []map[string]any `json:"resultats"` // field name kept for API compatibility
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// handleChatbot handles POST /api/chatbot.
func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required", "")
		return
	}

	ans, err := s.query.Ask(r.Context(), req.Question)
	if err != nil {
		s.handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatbotResponse{
		Question: ans.Question,
		Analysis: ans.Analysis,
		Results:  ans.Results,
	})
}

// handleChat handles POST /api/chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required", "")
		return
	}

	reply, err := s.chat.Reply(r.Context(), req.Message)
	if err != nil {
		s.handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Stable labels for surfaced pipeline failures. Recoverable degradations
// (parse failures, intent repairs) never reach this table: the pipeline
// self-heals those into a 200.
var errorLabels = []struct {
	sentinel error
	label    string
}{
	{domain.ErrModelUnavailable, "model unavailable"},
	{domain.ErrStoreUnavailable, "store unavailable"},
	{domain.ErrNoCollections, "no collections available"},
	{domain.ErrUnsupportedQueryShape, "unsupported query shape"},
}

func (s *Server) handlePipelineError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error("pipeline request failed", zap.Error(err))

	for _, e := range errorLabels {
		if errors.Is(err, e.sentinel) {
			writeError(w, http.StatusInternalServerError, e.label, err.Error())
			return
		}
	}
	writeError(w, http.StatusInternalServerError, "query pipeline failed", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, label, details string) {
	writeJSON(w, status, errorResponse{Error: label, Details: details})
}
