package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// maxResponseSize caps how much of a vendor response body is read.
const maxResponseSize = 4 << 20

// Transport sends authenticated vendor requests. It waits on the optional
// Limiter, attaches a bearer token, and maps non-200 answers to
// ErrVendorRequest. A 401 also drops the cached token.
type Transport struct {
	Vendor  domain.VendorID
	Client  *http.Client
	Tokens  TokenProvider
	Limiter *RateLimiter
}

// Do executes req and returns the body of a 200 response.
func (t *Transport) Do(ctx context.Context, req *http.Request) ([]byte, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit: %w", domain.ErrVendorRequest, err)
		}
	}

	token, err := t.Tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	req = req.WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing %s request: %w", domain.ErrVendorRequest, t.Vendor, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response body: %w", domain.ErrVendorRequest, t.Vendor, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The next call re-authenticates.
		_ = t.Tokens.Invalidate(ctx) //nolint:errcheck // best-effort
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"%w: %s API error (status %d): %s",
			domain.ErrVendorRequest,
			t.Vendor,
			resp.StatusCode,
			truncate(body, 512),
		)
	}

	return body, nil
}

// Quota reports the Limiter's usage, if there is one.
func (t *Transport) Quota() (Quota, bool) {
	if t.Limiter == nil {
		return Quota{}, false
	}
	return t.Limiter.Quota(), true
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
