package rates

import (
	"context"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/observability"
)

// Fetcher retrieves a live rate snapshot.
type Fetcher interface {
	Fetch(ctx context.Context) (*domain.ExchangeRates, error)
}

// Recorder observes the outcome of a load.
type Recorder interface {
	RecordRateLoad(source domain.RateSource, currencies int)
}

// Loader produces the session's exchange rates, falling back to the static table on any failure.
type Loader struct {
	fetcher  Fetcher
	recorder Recorder
}

// NewLoader creates a loader. recorder may be nil.
func NewLoader(fetcher Fetcher, recorder Recorder) *Loader {
	return &Loader{
		fetcher:  fetcher,
		recorder: recorder,
	}
}

// Load never fails: fetch errors are logged and replaced by the fallback table.
func (l *Loader) Load(ctx context.Context) *domain.ExchangeRates {
	logger := observability.FromContext(ctx)

	rates, err := l.fetcher.Fetch(ctx)
	if err != nil {
		logger.Warn("using fallback exchange rates", observability.Error(err))
		rates = domain.FallbackExchangeRates()
	} else {
		logger.Info("exchange rates loaded",
			observability.Int("rates", len(rates.Rates)),
			observability.Int("currencies", len(rates.Currencies)),
		)
	}

	if l.recorder != nil {
		l.recorder.RecordRateLoad(rates.Source, len(rates.Currencies))
	}

	return rates
}
