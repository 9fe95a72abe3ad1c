package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"voice-calculator/internal/handlers"
	"voice-calculator/internal/interpreter"
	"voice-calculator/internal/observability"
	"voice-calculator/internal/session"
	"voice-calculator/internal/units"
)

const (
	maxBodyBytes   = 64 << 10
	maxBatchInputs = 50
)

// Handler serves the calculator HTTP API.
type Handler struct {
	service  *Service
	sessions *session.Store
}

func NewHandler(service *Service, sessions *session.Store) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// Calculate handles POST /api/calculate. Bodies that cannot be read still get
// a 200 with a "please rephrase" answer so a voice client always has
// something to say.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.calculate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req CalculateRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", "invalid request body", err)
		handlers.WriteJSON(w, http.StatusOK, RephraseResult())
		return
	}

	result := h.service.Evaluate(ctx, req.Input)
	h.remember(r, req.Input, result)

	span.SetStatus(codes.Ok, "")
	logger.Info("calculation completed",
		zap.String("tool", result.Tool),
		zap.String("value", result.Value),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, result)
}

// MathTools handles POST /api/math-tools.
func (h *Handler) MathTools(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "calculator.math_tools")
	defer span.End()

	var req CalculateRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "math_tools", "invalid request body", err)
		handlers.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := interpreter.MathTools(req.Input)
	span.SetAttributes(attribute.String("calculator.tool", result.Tool))
	span.SetStatus(codes.Ok, "")

	handlers.WriteJSON(w, http.StatusOK, result)
}

// Convert handles POST /api/convert.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "calculator.convert")
	defer span.End()

	var req ConvertRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "invalid request body", err)
		handlers.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Value == nil || strings.TrimSpace(req.SourceUnit) == "" || strings.TrimSpace(req.TargetUnit) == "" {
		err := errors.New("value, source_unit and target_unit are required")
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "incomplete conversion request", err)
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	spec := units.Spec{
		Value:  *req.Value,
		Source: units.Resolve(req.SourceUnit),
		Target: units.Resolve(req.TargetUnit),
	}
	span.SetAttributes(
		attribute.String("units.source", spec.Source),
		attribute.String("units.target", spec.Target),
	)

	conv, ok := units.Convert(spec)
	if !ok {
		err := fmt.Errorf("no conversion from %s to %s", spec.Source, spec.Target)
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "unsupported conversion", err)
		handlers.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, ConvertResponse{
		Conversion: conv,
		SourceUnit: spec.Source,
		TargetUnit: spec.Target,
	})
}

// Units handles GET /api/units.
func (h *Handler) Units(w http.ResponseWriter, r *http.Request) {
	names := units.Categories()
	resp := UnitsResponse{Categories: make([]UnitCategory, 0, len(names))}
	for _, name := range names {
		resp.Categories = append(resp.Categories, UnitCategory{Name: name, Units: units.Units(name)})
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Parse handles POST /api/parse.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "calculator.parse")
	defer span.End()

	var req CalculateRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "parse", "invalid request body", err)
		handlers.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, ok := interpreter.ParseTokens(req.Input)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, "parse", "no operator with two operands", errors.New("unparseable input"))
		handlers.WriteError(w, http.StatusUnprocessableEntity, "could not find an operator with two operands")
		return
	}

	resp := ParseResponse{
		Tokens:      tokens,
		Expression:  tokens.Expression(),
		Explanation: tokens.Explain(),
		Valid:       tokens.Validate(),
	}
	if v, ok := tokens.Value(); ok {
		s := interpreter.FormatNumber(v)
		resp.Value = &s
	}

	span.SetAttributes(
		attribute.String("tokens.operator", tokens.Operator),
		attribute.String("tokens.confidence", string(tokens.Confidence)),
	)
	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Batch handles POST /api/batch, evaluating each phrase in its own child span.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	// Parent span for the entire batch
	ctx, span := tracer.Start(ctx, "calculator.batch",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req BatchRequest
	if err := decode(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "invalid request body", err)
		handlers.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case len(req.Inputs) == 0:
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "no inputs provided", errors.New("inputs array is empty"))
		handlers.WriteError(w, http.StatusBadRequest, "no inputs provided")
		return
	case len(req.Inputs) > maxBatchInputs:
		err := fmt.Errorf("%d inputs exceeds the limit of %d", len(req.Inputs), maxBatchInputs)
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "too many inputs", err)
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	span.SetAttributes(attribute.Int("batch.inputs_count", len(req.Inputs)))

	results := make([]BatchResult, 0, len(req.Inputs))
	for i, input := range req.Inputs {
		// --- Child span per phrase ---
		itemCtx, itemSpan := tracer.Start(ctx, fmt.Sprintf("calculator.batch.item.%d", i),
			trace.WithAttributes(attribute.Int("batch.item.index", i)),
		)

		result := h.service.Evaluate(itemCtx, input)
		h.remember(r, input, result)

		itemSpan.SetAttributes(
			attribute.String("batch.item.tool", result.Tool),
			attribute.String("batch.item.value", result.Value),
		)
		itemSpan.SetStatus(codes.Ok, "")
		itemSpan.End()

		results = append(results, BatchResult{Input: input, Result: result})
	}

	span.AddEvent("batch.complete", trace.WithAttributes(attribute.Int("total_inputs", len(results))))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch calculation completed",
		zap.Int("inputs", len(results)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, BatchResponse{Results: results})
}

// History handles GET /api/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	id := session.IDFromContext(r.Context())
	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{
		SessionID: id,
		Entries:   h.sessions.History(id).Entries(),
	})
}

// ClearHistory handles DELETE /api/history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	id := session.IDFromContext(r.Context())
	if hist, ok := h.sessions.Lookup(id); ok {
		hist.Clear()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) remember(r *http.Request, input string, result interpreter.Result) {
	id := session.IDFromContext(r.Context())
	if id == "" {
		return
	}
	h.sessions.History(id).Add(session.NewEntry(input, result))
}
