package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/davidbz/pricewise/internal/observability"
)

// ComparisonDefaults holds the values used when a quote leaves them out.
type ComparisonDefaults struct {
	Currency     string
	InputTokens  uint64
	OutputTokens uint64
}

// ComparisonService prices every stored model for a quote and keeps the store in sync.
type ComparisonService struct {
	store      PriceStore
	calculator CostCalculator
	rates      *ExchangeRates
	publisher  EventPublisher
	defaults   ComparisonDefaults
}

// NewComparisonService creates a new comparison service (DI constructor).
func NewComparisonService(
	store PriceStore,
	calculator CostCalculator,
	rates *ExchangeRates,
	publisher EventPublisher,
	defaults ComparisonDefaults,
) *ComparisonService {
	if rates == nil {
		rates = FallbackExchangeRates()
	}
	if defaults.Currency == "" {
		defaults.Currency = BaseCurrency
	}

	return &ComparisonService{
		store:      store,
		calculator: calculator,
		rates:      rates,
		publisher:  publisher,
		defaults:   defaults,
	}
}

// DefaultQuote returns the quote used when the caller supplies nothing.
func (s *ComparisonService) DefaultQuote() Quote {
	return Quote{
		InputTokens:  s.defaults.InputTokens,
		OutputTokens: s.defaults.OutputTokens,
		Currency:     s.defaults.Currency,
	}
}

// ExchangeRates returns the session's rate snapshot.
func (s *ComparisonService) ExchangeRates() *ExchangeRates {
	return s.rates
}

// Currencies returns the known currency codes matching query.
func (s *ComparisonService) Currencies(query string) []string {
	return s.rates.Currencies.Search(query)
}

// Compare fetches the full record set and prices it for the quote.
func (s *ComparisonService) Compare(ctx context.Context, quote Quote) (*Comparison, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list model prices: %w", err)
	}

	return s.buildComparison(quote, records), nil
}

// Upsert validates and stores a model price.
func (s *ComparisonService) Upsert(ctx context.Context, record ModelPrice) (*ModelPrice, error) {
	if err := ValidateModelPrice(record); err != nil {
		return nil, err
	}

	ctx = observability.WithModelName(ctx, record.ModelName)

	saved, err := s.store.Upsert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert model price: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, "model_price.upserted", map[string]interface{}{
			"model_name":   saved.ModelName,
			"provider":     saved.Provider,
			"input_price":  saved.InputPrice.String(),
			"output_price": saved.OutputPrice.String(),
		})
	}

	return saved, nil
}

// Watch emits the current comparison and then a fresh one after every change notification.
// The subscription is released when ctx is done; the returned channel is then closed.
func (s *ComparisonService) Watch(ctx context.Context, quote Quote) (<-chan ComparisonUpdate, error) {
	sub, err := s.store.SubscribeInserts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to model prices: %w", err)
	}

	updates := make(chan ComparisonUpdate)

	go func() {
		defer close(updates)
		defer sub.Unsubscribe()

		logger := observability.FromContext(ctx)

		if !s.sendSnapshot(ctx, updates, "", quote) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				logger.Debug("comparison watch stopped", observability.Error(ctx.Err()))
				return

			case event, ok := <-sub.Events():
				if !ok {
					logger.Info("model price subscription closed")
					return
				}

				// Updates are not delivered, so the whole list is re-fetched on any change.
				logger.Info("model price change received",
					observability.String("event_id", event.ID),
					observability.String("kind", string(event.Kind)),
					observability.String("model_name", event.Record.ModelName),
				)

				if !s.sendSnapshot(ctx, updates, event.ID, quote) {
					return
				}
			}
		}
	}()

	return updates, nil
}

// ValidateModelPrice checks the fields required by an upsert.
func ValidateModelPrice(record ModelPrice) error {
	var problems []error

	if strings.TrimSpace(record.ModelName) == "" {
		problems = append(problems, errors.New("model name is required"))
	}
	if strings.TrimSpace(record.Provider) == "" {
		problems = append(problems, errors.New("provider is required"))
	}
	if record.InputPrice.IsNegative() {
		problems = append(problems, errors.New("input price must be non-negative"))
	}
	if record.OutputPrice.IsNegative() {
		problems = append(problems, errors.New("output price must be non-negative"))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, errors.Join(problems...))
	}

	return nil
}

func (s *ComparisonService) sendSnapshot(
	ctx context.Context,
	updates chan<- ComparisonUpdate,
	eventID string,
	quote Quote,
) bool {
	comparison, err := s.Compare(ctx, quote)
	update := ComparisonUpdate{
		EventID:    eventID,
		Comparison: comparison,
		Error:      err,
	}

	select {
	case updates <- update:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *ComparisonService) buildComparison(quote Quote, records []ModelPrice) *Comparison {
	currency := strings.ToUpper(strings.TrimSpace(quote.Currency))
	if currency == "" {
		currency = s.defaults.Currency
	}
	rate := s.rates.RateFor(currency)

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b ModelPrice) int {
		return b.TotalPrice().Cmp(a.TotalPrice())
	})

	rows := make([]ComparisonRow, 0, len(sorted))
	for _, record := range sorted {
		inputCost := s.calculator.UnitCost(record.InputPrice, quote.InputTokens, rate)
		outputCost := s.calculator.UnitCost(record.OutputPrice, quote.OutputTokens, rate)

		rows = append(rows, ComparisonRow{
			ModelName:   record.ModelName,
			Provider:    record.Provider,
			InputPrice:  record.InputPrice,
			OutputPrice: record.OutputPrice,
			TotalPrice:  record.TotalPrice(),
			InputCost:   FormatPrice(inputCost),
			OutputCost:  FormatPrice(outputCost),
			TotalCost:   FormatPrice(s.calculator.TotalCost(inputCost, outputCost)),
		})
	}

	return &Comparison{
		Currency:           currency,
		ExchangeRate:       rate,
		InputTokens:        quote.InputTokens,
		OutputTokens:       quote.OutputTokens,
		InputTokensWords:   NumberToWords(quote.InputTokens),
		OutputTokensWords:  NumberToWords(quote.OutputTokens),
		InputTokensGroups:  GroupDigits(quote.InputTokens),
		OutputTokensGroups: GroupDigits(quote.OutputTokens),
		Rows:               rows,
		GeneratedAt:        time.Now().UTC(),
	}
}
