package walmart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/donaldgifford/grocery-prices/internal/auth"
	"github.com/donaldgifford/grocery-prices/internal/credentials"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

const (
	defaultTokenURL  = defaultBaseURL + "/identity/oauth/v1/token" //nolint:gosec // not a credential
	fallbackLifetime = 900 * time.Second
)

// Grant is the Walmart client-credentials exchange. The consumer ID is the
// client ID and also travels in the WM_CONSUMER.ID header.
type Grant struct {
	tokenURL string
	client   *http.Client
}

// GrantOption configures the Grant.
type GrantOption func(*Grant)

// WithTokenURL overrides the default Walmart token endpoint.
func WithTokenURL(u string) GrantOption {
	return func(g *Grant) {
		g.tokenURL = u
	}
}

// WithGrantHTTPClient overrides the default HTTP client.
func WithGrantHTTPClient(c *http.Client) GrantOption {
	return func(g *Grant) {
		g.client = c
	}
}

// NewGrant creates the Walmart token exchange.
func NewGrant(opts ...GrantOption) *Grant {
	g := &Grant{
		tokenURL: defaultTokenURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Walmart has used both spellings for these fields.
type tokenResponse struct {
	AccessToken      string `json:"accessToken"`
	AccessTokenSnake string `json:"access_token"`
	ExpiresIn        int64  `json:"expiresIn"`
	ExpiresInSnake   int64  `json:"expires_in"`
}

// Exchange implements auth.Grant.
func (g *Grant) Exchange(ctx context.Context, creds credentials.Credentials) (*auth.Issued, error) {
	body, err := auth.PostForm(ctx, g.client, &auth.FormRequest{
		URL: g.tokenURL,
		Form: url.Values{
			"grant_type":    {"client_credentials"},
			"client_id":     {creds.ClientID},
			"client_secret": {creds.ClientSecret},
		},
		Header: http.Header{
			consumerIDHeader: {creds.ClientID},
			"Cache-Control":  {"no-cache"},
		},
	})
	if err != nil {
		return nil, err
	}

	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: parsing token response: %v", domain.ErrAuthRequest, err)
	}

	token := resp.AccessToken
	if token == "" {
		token = resp.AccessTokenSnake
	}
	expiresIn := resp.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = resp.ExpiresInSnake
	}

	return &auth.Issued{
		AccessToken: token,
		ExpiresIn:   auth.Lifetime(expiresIn, fallbackLifetime),
	}, nil
}

var _ auth.Grant = (*Grant)(nil)
