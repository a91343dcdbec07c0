package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"calc-engine/internal/expr"
	"calc-engine/internal/handlers"
	"calc-engine/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler serves the calculator endpoints over a session Store.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// ---------------------------------------------------------------------------
// Handler: stateless evaluation
// ---------------------------------------------------------------------------

// Evaluate handles POST /calculator/evaluate
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	strategy := h.store.strategy

	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(
			attribute.String("calculator.strategy", string(strategy)),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	span.SetAttributes(attribute.String("calculator.expression", req.Expression))

	start := time.Now()
	result, err := strategy.Eval(req.Expression)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		kind := expr.KindOf(err)
		evalCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("strategy", string(strategy)),
			attribute.String("outcome", "error"),
		))
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", err.Error(), err, http.StatusUnprocessableEntity, w,
			attribute.String("kind", kind.String()),
		)
		return
	}

	recordResult(ctx, strategy, result, elapsed)

	span.AddEvent("evaluation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("expression evaluated",
		zap.String("expression", req.Expression),
		zap.Float64("result", result),
		zap.String("strategy", string(strategy)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Expression: req.Expression,
		Result:     result,
		Display:    expr.FormatNumber(result),
		Strategy:   string(strategy),
	})
}

// ---------------------------------------------------------------------------
// Handlers: sessions
// ---------------------------------------------------------------------------

// CreateSession handles POST /calculator/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	view := h.store.Create()

	observability.LoggerWithTrace(r.Context()).Info("session created",
		zap.String("session_id", view.ID),
		zap.String("request_id", observability.RequestIDFromContext(r.Context())),
	)

	handlers.WriteJSON(w, http.StatusCreated, view)
}

// GetSession handles GET /calculator/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, "get_session", func(s *Session) error {
		handlers.WriteJSON(w, http.StatusOK, s.View())
		return nil
	})
}

// PressKeys handles POST /calculator/sessions/{id}/keys. Applies each key in
// order and responds with the resulting view. The whole batch is rejected if
// any label is unknown.
func (h *Handler) PressKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	id := chi.URLParam(r, "id")

	ctx, span := tracer.Start(ctx, "calculator.keys",
		trace.WithAttributes(
			attribute.String("calculator.session_id", id),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req KeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	keys, err := ParseKeys(req.Keys)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	span.SetAttributes(attribute.Int("calculator.keys_count", len(keys)))

	var view SessionView
	err = h.store.Do(id, func(s *Session) error {
		for _, k := range keys {
			keyCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("key", k.String())))

			start := time.Now()
			c := s.Press(k)
			if c == nil {
				continue
			}
			elapsed := float64(time.Since(start).Microseconds()) / 1000.0
			recordCommit(ctx, span, logger, s, c, elapsed)
		}
		view = s.View()
		return nil
	})
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", err.Error(), err, http.StatusNotFound, w)
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, view)
}

// ClearHistory handles DELETE /calculator/sessions/{id}/history
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, "clear_history", func(s *Session) error {
		s.ClearHistory()
		handlers.WriteJSON(w, http.StatusOK, s.View())
		return nil
	})
}

// DeleteSession handles DELETE /calculator/sessions/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(id); err != nil {
		span := trace.SpanFromContext(ctx)
		observability.RecordError(ctx, span, observability.LoggerWithTrace(ctx), errorCounter, "delete_session", err.Error(), err, http.StatusNotFound, w)
		return
	}

	observability.LoggerWithTrace(ctx).Info("session deleted",
		zap.String("session_id", id),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)
	w.WriteHeader(http.StatusNoContent)
}

// withSession runs fn under the session's lock and maps a missing session to
// a 404.
func (h *Handler) withSession(w http.ResponseWriter, r *http.Request, opName string, fn func(*Session) error) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	err := h.store.Do(id, fn)
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	if errors.Is(err, ErrSessionNotFound) {
		status = http.StatusNotFound
	}
	span := trace.SpanFromContext(ctx)
	observability.RecordError(ctx, span, observability.LoggerWithTrace(ctx), errorCounter, opName, err.Error(), err, status, w)
}

// ---------------------------------------------------------------------------
// Recording helpers
// ---------------------------------------------------------------------------

func recordResult(ctx context.Context, strategy expr.Strategy, result, elapsed float64) {
	attrs := metric.WithAttributes(
		attribute.String("strategy", string(strategy)),
		attribute.String("outcome", "ok"),
	)
	evalCounter.Add(ctx, 1, attrs)
	evalHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, metric.WithAttributes(attribute.String("strategy", string(strategy))))
}

// recordCommit reports one "=" from a session. A failed commit is not an
// HTTP failure: the error travels back in the session view.
func recordCommit(ctx context.Context, span trace.Span, logger *zap.Logger, s *Session, c *Commit, elapsed float64) {
	if c.Err != nil {
		kind := expr.KindOf(c.Err).String()
		evalCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("strategy", string(s.Strategy())),
			attribute.String("outcome", "error"),
		))
		errorCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", "commit"),
			attribute.String("kind", kind),
		))
		span.AddEvent("commit.failed", trace.WithAttributes(
			attribute.String("expression", c.Expression),
			attribute.String("kind", kind),
		))
		logger.Warn("commit failed",
			zap.String("session_id", s.ID),
			zap.String("expression", c.Expression),
			zap.String("kind", kind),
			zap.Error(c.Err),
		)
		return
	}

	recordResult(ctx, s.Strategy(), c.Result, elapsed)

	span.AddEvent("commit.complete", trace.WithAttributes(
		attribute.String("expression", c.Expression),
		attribute.Float64("result", c.Result),
	))
	logger.Info("commit completed",
		zap.String("session_id", s.ID),
		zap.String("expression", c.Expression),
		zap.Float64("result", c.Result),
		zap.String("strategy", string(s.Strategy())),
		zap.Float64("duration_ms", elapsed),
	)
}
