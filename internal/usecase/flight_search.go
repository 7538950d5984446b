package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

// SearchMode selects how remote search failures are handled.
type SearchMode string

const (
	// SearchModeDemo always serves synthetic offers. The remote endpoint is
	// still called, but its outcome is only logged.
	SearchModeDemo SearchMode = "demo"

	// SearchModeLive serves the remote offers and reports remote failures.
	SearchModeLive SearchMode = "live"
)

// IsValid checks if the mode is a known value.
func (m SearchMode) IsValid() bool {
	return m == SearchModeDemo || m == SearchModeLive
}

// DefaultSearchTimeout bounds a single search.
const DefaultSearchTimeout = 10 * time.Second

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search returns the offers for params according to the configured mode.
	Search(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error)
}

// Config contains configuration options for the use case.
type Config struct {
	Mode    SearchMode
	Timeout time.Duration
}

// DefaultConfig returns demo mode with the default timeout.
func DefaultConfig() Config {
	return Config{
		Mode:    SearchModeDemo,
		Timeout: DefaultSearchTimeout,
	}
}

type flightSearchUseCase struct {
	remote    domain.FlightSource
	synthetic domain.FlightSource
	mode      SearchMode
	timeout   time.Duration
	log       zerolog.Logger
}

// NewFlightSearchUseCase creates a FlightSearchUseCase. remote may be nil in
// demo mode, in which case only synthetic offers are produced. If config is
// nil, or leaves fields unset, defaults are used.
func NewFlightSearchUseCase(remote, synthetic domain.FlightSource, config *Config, log zerolog.Logger) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.Mode.IsValid() {
			cfg.Mode = config.Mode
		}
		if config.Timeout > 0 {
			cfg.Timeout = config.Timeout
		}
	}

	return &flightSearchUseCase{
		remote:    remote,
		synthetic: synthetic,
		mode:      cfg.Mode,
		timeout:   cfg.Timeout,
		log:       log,
	}
}

// Search implements FlightSearchUseCase. The timeout bounds the remote call
// only; in demo mode the synthetic offers are produced on the caller's ctx so
// a remote that runs out the deadline cannot take them down with it.
func (uc *flightSearchUseCase) Search(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
	if uc.mode == SearchModeLive {
		if uc.remote == nil {
			return nil, fmt.Errorf("%w: no remote source configured", domain.ErrSearchFailed)
		}
		results, err := uc.queryRemote(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
		}
		return results, nil
	}

	if uc.remote != nil {
		start := time.Now()
		if _, err := uc.queryRemote(ctx, params); err != nil {
			uc.log.Warn().
				Err(err).
				Str("provider", uc.remote.Name()).
				Dur("duration", time.Since(start)).
				Msg("remote search failed, serving synthetic offers")
		}
	}

	if uc.synthetic == nil {
		return nil, fmt.Errorf("%w: no synthetic source configured", domain.ErrSearchFailed)
	}
	results, err := uc.query(ctx, uc.synthetic, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}
	return results, nil
}

// queryRemote calls the remote source under its own timeout.
func (uc *flightSearchUseCase) queryRemote(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.query(ctx, uc.remote, params)
}

// query calls one source with panic recovery.
func (uc *flightSearchUseCase) query(ctx context.Context, source domain.FlightSource, params domain.SearchParams) (results []domain.FlightResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = domain.NewProviderError(source.Name(), fmt.Errorf("provider panic: %v", r))
		}
	}()

	results, err = source.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.FlightResult{}
	}
	return results, nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
