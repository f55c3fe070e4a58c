package countries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"country-atlas/core/database"
	"country-atlas/core/lock"
	"country-atlas/core/reconcile"
	"country-atlas/feature/countries/gdp"
	"country-atlas/feature/countries/source"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) *GormRepository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

// staticSource serves a fixed dataset or error.
type staticSource struct {
	countries []source.Country
	err       error
	calls     atomic.Int32
}

func (s *staticSource) FetchAll(context.Context) ([]source.Country, error) {
	s.calls.Add(1)
	return s.countries, s.err
}

// stubRates returns a fixed rate per code and records every lookup.
type stubRates struct {
	mu     sync.Mutex
	rates  map[string]float64
	lookup []string
}

func (r *stubRates) Resolve(_ context.Context, code string) *float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookup = append(r.lookup, code)
	if rate, ok := r.rates[code]; ok {
		return &rate
	}
	return nil
}

func (r *stubRates) lookups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lookup...)
}

type stubPublisher struct {
	calls atomic.Int32
	err   error
}

func (p *stubPublisher) Publish(context.Context) error {
	p.calls.Add(1)
	return p.err
}

type fixture struct {
	repo      *GormRepository
	source    *staticSource
	rates     *stubRates
	publisher *stubPublisher
	locker    *lock.LocalLocker
	service   *Service
}

func newFixture(t *testing.T, countries ...source.Country) *fixture {
	t.Helper()
	f := &fixture{
		repo:      newTestRepo(t),
		source:    &staticSource{countries: countries},
		rates:     &stubRates{rates: map[string]float64{"EUR": 1.1, "USD": 1, "NGN": 1600}},
		publisher: &stubPublisher{},
		locker:    lock.NewLocal(),
	}
	f.service = f.build(f.source)
	return f
}

func (f *fixture) build(src Fetcher) *Service {
	return NewService(Dependencies{
		Repo:      f.repo,
		Source:    src,
		Rates:     f.rates,
		Estimator: gdp.NewEstimator(),
		Publisher: f.publisher,
		Locker:    f.locker,
		Logger:    zap.NewNop(),
		Options:   reconcile.Options{BatchSize: 10},
		Now:       func() time.Time { return fixedNow },
	})
}

func httpSource(t *testing.T, handler http.HandlerFunc, timeout int) *source.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return source.NewClient(source.Config{URL: srv.URL, TimeoutSeconds: timeout}, srv.Client())
}

func country(name, region string, population int64, currency string) source.Country {
	c := source.Country{
		Name:       name,
		Capital:    name + " City",
		Region:     region,
		Population: population,
		Flag:       "https://flags.example/" + name + ".svg",
	}
	if currency != "" {
		c.Currencies = []source.Currency{{Code: currency}}
	}
	return c
}

// rateRouter dispatches lookups per currency code.
type rateRouter map[string]RateResolver

func (r rateRouter) Resolve(ctx context.Context, code string) *float64 {
	if resolver, ok := r[code]; ok {
		return resolver.Resolve(ctx, code)
	}
	return nil
}

// hangingServer returns the URL of a server that never answers before the client gives up.
func hangingServer(t *testing.T) string {
	t.Helper()
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})
	return srv.URL
}

// blockingSource holds FetchAll open until gate is closed.
type blockingSource struct {
	started chan struct{}
	gate    chan struct{}
}

func (b *blockingSource) FetchAll(ctx context.Context) ([]source.Country, error) {
	close(b.started)
	<-b.gate
	return nil, nil
}
