package kroger

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
	defaultTokenURL = "https://api.kroger.com/v1/connect/oauth2/token" //nolint:gosec // not a credential
	defaultScope    = "product.compact"
	// Kroger access tokens live for 30 minutes.
	fallbackLifetime = 30 * time.Minute
)

// AuthStyle selects where the client credentials travel in the token request.
type AuthStyle string

// Auth styles.
const (
	// AuthBasic sends the pair as an HTTP Basic Authorization header.
	AuthBasic AuthStyle = "basic"
	// AuthBody sends client_id and client_secret as form fields.
	AuthBody AuthStyle = "body"
)

// Grant is the Kroger client-credentials exchange.
type Grant struct {
	tokenURL string
	style    AuthStyle
	client   *http.Client
}

// GrantOption configures the Grant.
type GrantOption func(*Grant)

// WithTokenURL overrides the default Kroger token endpoint.
func WithTokenURL(u string) GrantOption {
	return func(g *Grant) {
		g.tokenURL = u
	}
}

// WithAuthStyle overrides the default Basic credential placement.
func WithAuthStyle(s AuthStyle) GrantOption {
	return func(g *Grant) {
		g.style = s
	}
}

// WithGrantHTTPClient overrides the default HTTP client.
func WithGrantHTTPClient(c *http.Client) GrantOption {
	return func(g *Grant) {
		g.client = c
	}
}

// NewGrant creates the Kroger token exchange.
func NewGrant(opts ...GrantOption) *Grant {
	g := &Grant{
		tokenURL: defaultTokenURL,
		style:    AuthBasic,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Exchange implements auth.Grant.
func (g *Grant) Exchange(ctx context.Context, creds credentials.Credentials) (*auth.Issued, error) {
	scope := creds.Scope
	if scope == "" {
		scope = defaultScope
	}

	fr := &auth.FormRequest{
		URL: g.tokenURL,
		Form: url.Values{
			"grant_type": {"client_credentials"},
			"scope":      {scope},
		},
	}
	if g.style == AuthBody {
		fr.Form.Set("client_id", creds.ClientID)
		fr.Form.Set("client_secret", creds.ClientSecret)
	} else {
		fr.BasicUser = creds.ClientID
		fr.BasicPassword = creds.ClientSecret
	}

	body, err := auth.PostForm(ctx, g.client, fr)
	if err != nil {
		return nil, err
	}

	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: parsing token response: %v", domain.ErrAuthRequest, err)
	}

	return &auth.Issued{
		AccessToken: resp.AccessToken,
		ExpiresIn:   auth.Lifetime(resp.ExpiresIn, fallbackLifetime),
	}, nil
}

var _ auth.Grant = (*Grant)(nil)
