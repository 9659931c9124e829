package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/observability"
)

const (
	maxBodyBytes      = 1 << 20
	keepAliveInterval = 15 * time.Second
)

// Handler handles HTTP requests.
type Handler struct {
	comparison *domain.ComparisonService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(comparison *domain.ComparisonService) *Handler {
	return &Handler{
		comparison: comparison,
	}
}

// HandleListPrices renders the comparison table for the query's quote.
func (h *Handler) HandleListPrices(w http.ResponseWriter, r *http.Request) {
	quote, err := parseQuote(r, h.comparison.DefaultQuote())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := observability.WithCurrency(r.Context(), quote.Currency)
	logger := observability.FromContext(ctx)

	comparison, err := h.comparison.Compare(ctx, quote)
	if err != nil {
		logger.Error("comparison failed", zap.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	logger.Info("comparison served",
		zap.Uint64("input_tokens", quote.InputTokens),
		zap.Uint64("output_tokens", quote.OutputTokens),
		zap.Int("models", len(comparison.Rows)),
	)

	writeJSON(ctx, w, http.StatusOK, comparison)
}

// HandleUpsertPrice creates or replaces a model price.
func (h *Handler) HandleUpsertPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var record domain.ModelPrice
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&record); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx = observability.WithModelName(ctx, record.ModelName)
	logger := observability.FromContext(ctx)

	saved, err := h.comparison.Upsert(ctx, record)
	if err != nil {
		logger.Error("upsert failed", zap.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(ctx, w, http.StatusOK, saved)
}

// HandleStreamPrices pushes a fresh comparison over SSE every time the price table changes.
func (h *Handler) HandleStreamPrices(w http.ResponseWriter, r *http.Request) {
	quote, err := parseQuote(r, h.comparison.DefaultQuote())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := observability.WithCurrency(r.Context(), quote.Currency)
	logger := observability.FromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	updates, err := h.comparison.Watch(ctx, quote)
	if err != nil {
		logger.Error("watch failed", zap.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	// Streams outlive the server's write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	// Set headers for SSE.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	logger.Info("price stream started")

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()

		case update, ok := <-updates:
			if !ok {
				logger.Info("price stream closed")
				return
			}

			id := update.EventID
			if id == "" {
				id = ulid.Make().String()
			}

			if update.Error != nil {
				logger.Error("price stream refresh failed", zap.Error(update.Error))
				fmt.Fprintf(w, "id: %s\nevent: error\ndata: %s\n\n", id, sanitizeEventData(update.Error.Error()))
				flusher.Flush()
				continue
			}

			data, err := json.Marshal(update.Comparison)
			if err != nil {
				logger.Error("failed to encode comparison", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "id: %s\nevent: comparison\ndata: %s\n\n", id, data)
			flusher.Flush()
		}
	}
}

// HandleCurrencies lists known currency codes, filtered by the q parameter.
func (h *Handler) HandleCurrencies(w http.ResponseWriter, r *http.Request) {
	rates := h.comparison.ExchangeRates()

	writeJSON(r.Context(), w, http.StatusOK, map[string]interface{}{
		"currencies": h.comparison.Currencies(r.URL.Query().Get("q")),
		"source":     rates.Source,
	})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// parseQuote reads input_tokens, output_tokens and currency, using defaults for absent values.
func parseQuote(r *http.Request, defaults domain.Quote) (domain.Quote, error) {
	query := r.URL.Query()
	quote := defaults

	var err error
	if quote.InputTokens, err = parseTokens(query, "input_tokens", defaults.InputTokens); err != nil {
		return domain.Quote{}, err
	}
	if quote.OutputTokens, err = parseTokens(query, "output_tokens", defaults.OutputTokens); err != nil {
		return domain.Quote{}, err
	}

	if query.Has("currency") {
		currency := strings.ToUpper(strings.TrimSpace(query.Get("currency")))
		if currency != "" {
			quote.Currency = currency
		}
	}

	return quote, nil
}

func parseTokens(query map[string][]string, key string, fallback uint64) (uint64, error) {
	values, ok := query[key]
	if !ok || len(values) == 0 {
		return fallback, nil
	}

	raw := strings.TrimSpace(values[0])
	if raw == "" || strings.IndexFunc(raw, func(c rune) bool { return c < '0' || c > '9' }) >= 0 {
		return 0, fmt.Errorf("%s must contain digits only", key)
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s is out of range", key)
	}

	return n, nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDataAccess), errors.Is(err, domain.ErrEmptyResult):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func sanitizeEventData(message string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(message)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(err))
	}
}
