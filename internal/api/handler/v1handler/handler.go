// Package v1handler implements the HTTP handlers for version 1 of the API.
package v1handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sudoku/internal/solver"
	"sudoku/pkg/logger"
	"sudoku/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Deps lists the collaborators the handlers need.
type Deps struct {
	// Solver coordinates puzzle persistence and deduction runs.
	Solver solver.Solver
}

type Handler struct {
	deps Deps

	requests metric.Int64Counter
}

// New constructs a Handler, registering its instruments on the given meter
// provider.
func New(deps Deps, mp metric.MeterProvider) (*Handler, error) {
	meter := mp.Meter("sudoku/api/v1")
	requests, err := meter.Int64Counter("api_requests_total",
		metric.WithDescription("Number of handled API requests by operation."))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	return &Handler{
		deps:     deps,
		requests: requests,
	}, nil
}

// Mux returns the routing table for the v1 API.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/puzzles", h.operation("CreatePuzzle", h.createPuzzle))
	mux.HandleFunc("GET /v1/puzzles", h.operation("ListPuzzles", h.listPuzzles))
	mux.HandleFunc("GET /v1/puzzles/{id}", h.operation("GetPuzzle", h.getPuzzle))
	mux.HandleFunc("DELETE /v1/puzzles/{id}", h.operation("DeletePuzzle", h.deletePuzzle))
	mux.HandleFunc("POST /v1/solve", h.operation("SolvePuzzle", h.solvePuzzle))
	mux.HandleFunc("POST /v1/validate", h.operation("ValidatePuzzle", h.validatePuzzle))

	return mux
}

// operation wraps a handler with a tracing span and a per-operation request count.
func (h *Handler) operation(name string, fn http.HandlerFunc) http.HandlerFunc {
	tracer := otel.Tracer("sudoku/api/v1")

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), name, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		h.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", name)))

		fn(w, r.WithContext(ctx))
	}
}

// ErrorResponse is the JSON error payload returned by every endpoint.
type ErrorResponse struct {
	// Code is the semantic error code, e.g. "NOT_FOUND".
	Code string `json:"code"`
	// Message is a human readable description of the error.
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// kindStatus maps semantic error kinds to HTTP statuses and default messages.
func kindStatus(err error) (int, serrors.Kind, string) {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound, serrors.ErrNotFound, "resource not found"
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized, serrors.ErrUnauthorized, "unauthorized"
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest, serrors.ErrBadRequest, "bad request"
	case errors.Is(err, serrors.ErrInvalidPuzzle):
		return http.StatusUnprocessableEntity, serrors.ErrInvalidPuzzle, "invalid puzzle"
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict, serrors.ErrConflict, "conflict"
	default:
		return http.StatusInternalServerError, serrors.ErrInternal, "internal error"
	}
}

// WriteError maps an error to its HTTP status and JSON payload. Internal
// errors never leak their cause to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, msg := kindStatus(err)

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	} else {
		var sErr *serrors.Error
		if errors.As(err, &sErr) && sErr.Message() != "" {
			msg = sErr.Message()
		}
	}

	writeJSON(w, status, ErrorResponse{
		Code:    kind.Error(),
		Message: msg,
	})
}
