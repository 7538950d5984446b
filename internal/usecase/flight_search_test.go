package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/flight-booking-system/internal/domain"
)

func testParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "DAC",
		Destination:   "DXB",
		DepartureDate: "01 Jan 2026",
		Passengers:    domain.PassengerCounts{Adult: 2, Children: 1},
		TripType:      domain.TripOneWay,
		CabinClass:    domain.CabinEconomy,
	}
}

func remoteOffers() []domain.FlightResult {
	return []domain.FlightResult{
		{ID: "srv-1", Airline: "Emirates", Price: 480, Currency: "USD"},
	}
}

func syntheticOffers() []domain.FlightResult {
	return []domain.FlightResult{
		{ID: "flight-0", Airline: "Singapore Airlines", Price: 110, Currency: "USD"},
		{ID: "flight-1", Airline: "Qatar Airways", Price: 260, Currency: "USD"},
	}
}

// setupMockSource creates a mock source with standard behavior.
func setupMockSource(ctrl *gomock.Controller, name string, flights []domain.FlightResult, err error) *domain.MockFlightSource {
	mock := domain.NewMockFlightSource(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	mock.EXPECT().Search(gomock.Any(), gomock.Any()).Return(flights, err).AnyTimes()
	return mock
}

// setupMockSourceWithPanic creates a mock source that panics.
func setupMockSourceWithPanic(ctrl *gomock.Controller, name string) *domain.MockFlightSource {
	mock := domain.NewMockFlightSource(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	mock.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
			panic("decoder exploded")
		},
	).AnyTimes()
	return mock
}

func TestNewFlightSearchUseCase(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantMode    SearchMode
		wantTimeout time.Duration
	}{
		{
			name:        "nil config uses defaults",
			config:      nil,
			wantMode:    SearchModeDemo,
			wantTimeout: DefaultSearchTimeout,
		},
		{
			name:        "custom config",
			config:      &Config{Mode: SearchModeLive, Timeout: 3 * time.Second},
			wantMode:    SearchModeLive,
			wantTimeout: 3 * time.Second,
		},
		{
			name:        "invalid values fall back",
			config:      &Config{Mode: "chaos", Timeout: -1},
			wantMode:    SearchModeDemo,
			wantTimeout: DefaultSearchTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewFlightSearchUseCase(nil, nil, tt.config, zerolog.Nop())

			impl, ok := uc.(*flightSearchUseCase)
			require.True(t, ok)
			assert.Equal(t, tt.wantMode, impl.mode)
			assert.Equal(t, tt.wantTimeout, impl.timeout)
		})
	}
}

func TestSearch_DemoServesSyntheticOnRemoteSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := setupMockSource(ctrl, "remote", remoteOffers(), nil)
	synthetic := setupMockSource(ctrl, "synthetic", syntheticOffers(), nil)
	uc := NewFlightSearchUseCase(remote, synthetic, nil, zerolog.Nop())

	results, err := uc.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.Equal(t, syntheticOffers(), results)
}

func TestSearch_DemoSwallowsRemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	remote := setupMockSource(ctrl, "remote", nil, domain.NewProviderUnavailableError("remote"))
	synthetic := setupMockSource(ctrl, "synthetic", syntheticOffers(), nil)
	uc := NewFlightSearchUseCase(remote, synthetic, &Config{Mode: SearchModeDemo}, log)

	results, err := uc.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"provider":"remote"`)
}

func TestSearch_DemoWithoutRemote(t *testing.T) {
	ctrl := gomock.NewController(t)

	synthetic := setupMockSource(ctrl, "synthetic", syntheticOffers(), nil)
	uc := NewFlightSearchUseCase(nil, synthetic, nil, zerolog.Nop())

	results, err := uc.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearch_LiveReturnsRemoteData(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := setupMockSource(ctrl, "remote", remoteOffers(), nil)
	synthetic := domain.NewMockFlightSource(ctrl)
	uc := NewFlightSearchUseCase(remote, synthetic, &Config{Mode: SearchModeLive}, zerolog.Nop())

	results, err := uc.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.Equal(t, remoteOffers(), results)
}

func TestSearch_LiveReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := setupMockSource(ctrl, "remote", nil, domain.NewProviderTimeoutError("remote"))
	synthetic := domain.NewMockFlightSource(ctrl)
	uc := NewFlightSearchUseCase(remote, synthetic, &Config{Mode: SearchModeLive}, zerolog.Nop())

	results, err := uc.Search(context.Background(), testParams())

	assert.Nil(t, results)
	assert.ErrorIs(t, err, domain.ErrSearchFailed)
	assert.ErrorIs(t, err, domain.ErrProviderTimeout)
}

func TestSearch_LiveWithoutRemote(t *testing.T) {
	uc := NewFlightSearchUseCase(nil, nil, &Config{Mode: SearchModeLive}, zerolog.Nop())

	_, err := uc.Search(context.Background(), testParams())

	assert.ErrorIs(t, err, domain.ErrSearchFailed)
}

func TestSearch_EmptyResultsAreNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := setupMockSource(ctrl, "remote", nil, nil)
	uc := NewFlightSearchUseCase(remote, nil, &Config{Mode: SearchModeLive}, zerolog.Nop())

	results, err := uc.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_SourcePanic(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := setupMockSourceWithPanic(ctrl, "remote")
	synthetic := setupMockSource(ctrl, "synthetic", syntheticOffers(), nil)

	demo := NewFlightSearchUseCase(remote, synthetic, nil, zerolog.Nop())
	results, err := demo.Search(context.Background(), testParams())
	require.NoError(t, err)
	assert.Len(t, results, 2)

	live := NewFlightSearchUseCase(remote, synthetic, &Config{Mode: SearchModeLive}, zerolog.Nop())
	_, err = live.Search(context.Background(), testParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider panic")

	var pe *domain.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "remote", pe.Provider)
}

func TestSearch_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := domain.NewMockFlightSource(ctrl)
	remote.EXPECT().Name().Return("remote").AnyTimes()
	remote.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
			<-ctx.Done()
			return nil, domain.NewProviderTimeoutError("remote")
		},
	)
	uc := NewFlightSearchUseCase(remote, nil, &Config{Mode: SearchModeLive, Timeout: 20 * time.Millisecond}, zerolog.Nop())

	start := time.Now()
	_, err := uc.Search(context.Background(), testParams())

	assert.ErrorIs(t, err, domain.ErrProviderTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSearch_DemoServesSyntheticWhenRemoteRunsOutDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := domain.NewMockFlightSource(ctrl)
	remote.EXPECT().Name().Return("remote").AnyTimes()
	remote.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)

	synthetic := domain.NewMockFlightSource(ctrl)
	synthetic.EXPECT().Name().Return("synthetic").AnyTimes()
	synthetic.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return syntheticOffers(), nil
		},
	)

	uc := NewFlightSearchUseCase(remote, synthetic, &Config{Mode: SearchModeDemo, Timeout: 30 * time.Millisecond}, zerolog.Nop())

	results, err := uc.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.Equal(t, syntheticOffers(), results)
}

func TestSearch_VerifyParamsPassedCorrectly(t *testing.T) {
	ctrl := gomock.NewController(t)

	params := testParams()
	remote := domain.NewMockFlightSource(ctrl)
	remote.EXPECT().Name().Return("remote").AnyTimes()
	remote.EXPECT().Search(gomock.Any(), params).Return(remoteOffers(), nil).Times(1)

	uc := NewFlightSearchUseCase(remote, nil, &Config{Mode: SearchModeLive}, zerolog.Nop())
	_, err := uc.Search(context.Background(), params)

	require.NoError(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, SearchModeDemo, cfg.Mode)
	assert.Equal(t, DefaultSearchTimeout, cfg.Timeout)
}
