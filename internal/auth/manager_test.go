package auth_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/grocery-prices/internal/auth"
	"github.com/donaldgifford/grocery-prices/internal/credentials"
	"github.com/donaldgifford/grocery-prices/pkg/logger"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// countingGrant issues "token-N" tokens valid for lifetime.
type countingGrant struct {
	calls    atomic.Int32
	lifetime time.Duration
	delay    time.Duration
	err      error
}

func (g *countingGrant) Exchange(_ context.Context, creds credentials.Credentials) (*auth.Issued, error) {
	n := g.calls.Add(1)
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if g.err != nil {
		return nil, g.err
	}
	return &auth.Issued{
		AccessToken: creds.ClientID + "-token-" + string(rune('0'+n)),
		ExpiresIn:   g.lifetime,
	}, nil
}

func testCreds() *credentials.Store {
	return credentials.New(map[domain.VendorID]credentials.Credentials{
		domain.VendorKroger:  {ClientID: "kroger", ClientSecret: "secret"},
		domain.VendorWalmart: {ClientID: "walmart", ClientSecret: "secret"},
	})
}

func TestManager_CachesWithinValidity(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	grant := &countingGrant{lifetime: 30 * time.Minute}

	m := auth.NewManager(testCreds(),
		auth.WithGrant(domain.VendorKroger, grant),
		auth.WithNowFunc(clock.Now),
		auth.WithLogger(logger.Discard()),
	)

	tok1, err := m.Token(context.Background(), domain.VendorKroger)
	require.NoError(t, err)
	assert.Equal(t, "kroger-token-1", tok1)
	assert.Equal(t, int32(1), grant.calls.Load())

	clock.Advance(10 * time.Minute)

	tok2, err := m.Token(context.Background(), domain.VendorKroger)
	require.NoError(t, err)
	assert.Equal(t, tok1, tok2)
	assert.Equal(t, int32(1), grant.calls.Load(), "second call within validity must not exchange")
}

func TestManager_RefreshesAfterExpiry(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	grant := &countingGrant{lifetime: 30 * time.Minute}

	m := auth.NewManager(testCreds(),
		auth.WithGrant(domain.VendorKroger, grant),
		auth.WithNowFunc(clock.Now),
		auth.WithLogger(logger.Discard()),
	)

	_, err := m.Token(context.Background(), domain.VendorKroger)
	require.NoError(t, err)

	clock.Advance(31 * time.Minute)

	tok, err := m.Token(context.Background(), domain.VendorKroger)
	require.NoError(t, err)
	assert.Equal(t, "kroger-token-2", tok)
	assert.Equal(t, int32(2), grant.calls.Load(), "call after expiry must exchange exactly once")
}

func TestManager_RefreshMargin(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	grant := &countingGrant{lifetime: 30 * time.Minute}

	m := auth.NewManager(testCreds(),
		auth.WithGrant(domain.VendorKroger, grant),
		auth.WithNowFunc(clock.Now),
		auth.WithRefreshMargin(2*time.Minute),
		auth.WithLogger(logger.Discard()),
	)

	_, err := m.Token(context.Background(), domain.VendorKroger)
	require.NoError(t, err)

	// Inside the margin: still before expiry, but renewed anyway.
	clock.Advance(28*time.Minute + time.Second)

	_, err = m.Token(context.Background(), domain.VendorKroger)
	require.NoError(t, err)
	assert.Equal(t, int32(2), grant.calls.Load())
}

func TestManager_VendorsCachedIndependently(t *testing.T) {
	t.Parallel()

	kroger := &countingGrant{lifetime: time.Hour}
	walmart := &countingGrant{lifetime: time.Hour}

	m := auth.NewManager(testCreds(),
		auth.WithGrant(domain.VendorKroger, kroger),
		auth.WithGrant(domain.VendorWalmart, walmart),
		auth.WithLogger(logger.Discard()),
	)

	k, err := m.Token(context.Background(), domain.VendorKroger)
	require.NoError(t, err)
	w, err := m.Token(context.Background(), domain.VendorWalmart)
	require.NoError(t, err)

	assert.Equal(t, "kroger-token-1", k)
	assert.Equal(t, "walmart-token-1", w)
	assert.Equal(t, int32(1), kroger.calls.Load())
	assert.Equal(t, int32(1), walmart.calls.Load())
}

func TestManager_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		creds   *credentials.Store
		grant   auth.Grant
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing credentials",
			creds:   credentials.New(nil),
			grant:   &countingGrant{lifetime: time.Hour},
			wantErr: domain.ErrAuthConfig,
			wantMsg: "no credentials",
		},
		{
			name:    "no grant registered",
			creds:   testCreds(),
			wantErr: domain.ErrAuthConfig,
			wantMsg: "no token grant registered",
		},
		{
			name:    "grant rejected",
			creds:   testCreds(),
			grant:   &countingGrant{err: errors.New("status 401")},
			wantErr: domain.ErrAuthRequest,
			wantMsg: "status 401",
		},
		{
			name:  "empty access token",
			creds: testCreds(),
			grant: auth.GrantFunc(func(context.Context, credentials.Credentials) (*auth.Issued, error) {
				return &auth.Issued{ExpiresIn: time.Hour}, nil
			}),
			wantErr: domain.ErrAuthRequest,
			wantMsg: "no access token",
		},
		{
			name:  "no lifetime",
			creds: testCreds(),
			grant: auth.GrantFunc(func(context.Context, credentials.Credentials) (*auth.Issued, error) {
				return &auth.Issued{AccessToken: "tok"}, nil
			}),
			wantErr: domain.ErrAuthRequest,
			wantMsg: "no lifetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := []auth.Option{auth.WithLogger(logger.Discard())}
			if tt.grant != nil {
				opts = append(opts, auth.WithGrant(domain.VendorKroger, tt.grant))
			}
			m := auth.NewManager(tt.creds, opts...)

			_, err := m.Token(context.Background(), domain.VendorKroger)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestManager_ConcurrentMissesShareOneExchange(t *testing.T) {
	t.Parallel()

	grant := &countingGrant{lifetime: time.Hour, delay: 20 * time.Millisecond}
	m := auth.NewManager(testCreds(),
		auth.WithGrant(domain.VendorKroger, grant),
		auth.WithLogger(logger.Discard()),
	)

	const goroutines = 10

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			tok, err := m.Token(context.Background(), domain.VendorKroger)
			assert.NoError(t, err)
			assert.Equal(t, "kroger-token-1", tok)
		}()
	}

	wg.Wait()
	assert.Equal(t, int32(1), grant.calls.Load())
}

func TestManager_Invalidate(t *testing.T) {
	t.Parallel()

	grant := &countingGrant{lifetime: time.Hour}
	m := auth.NewManager(testCreds(),
		auth.WithGrant(domain.VendorKroger, grant),
		auth.WithLogger(logger.Discard()),
	)
	tokens := m.For(domain.VendorKroger)

	_, err := tokens.Token(context.Background())
	require.NoError(t, err)

	require.NoError(t, tokens.Invalidate(context.Background()))

	tok, err := tokens.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "kroger-token-2", tok)
}

// failingStore always errors, to check the Manager degrades to refetching.
type failingStore struct{}

func (failingStore) Get(context.Context, domain.VendorID) (auth.Token, bool, error) {
	return auth.Token{}, false, errors.New("store down")
}

func (failingStore) Put(context.Context, domain.VendorID, auth.Token) error {
	return errors.New("store down")
}

func (failingStore) Delete(context.Context, domain.VendorID) error { return nil }

func TestManager_StoreFailureStillReturnsToken(t *testing.T) {
	t.Parallel()

	grant := &countingGrant{lifetime: time.Hour}
	m := auth.NewManager(testCreds(),
		auth.WithGrant(domain.VendorKroger, grant),
		auth.WithStore(failingStore{}),
		auth.WithLogger(logger.Discard()),
	)

	tok, err := m.Token(context.Background(), domain.VendorKroger)
	require.NoError(t, err)
	assert.Equal(t, "kroger-token-1", tok)
}
