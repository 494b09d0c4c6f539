package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/grocery-prices/internal/credentials"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// maxTokenResponseSize caps how much of a token endpoint response is read.
const maxTokenResponseSize = 1 << 20

// Issued is a freshly exchanged bearer token and its lifetime as reported
// by the vendor.
type Issued struct {
	AccessToken string
	ExpiresIn   time.Duration
}

// Grant performs one vendor's client-credentials exchange. Each vendor
// package supplies its own Grant because transport and response field
// names differ per vendor.
type Grant interface {
	Exchange(ctx context.Context, creds credentials.Credentials) (*Issued, error)
}

// GrantFunc adapts a function to the Grant interface.
type GrantFunc func(ctx context.Context, creds credentials.Credentials) (*Issued, error)

// Exchange implements Grant.
func (f GrantFunc) Exchange(ctx context.Context, creds credentials.Credentials) (*Issued, error) {
	return f(ctx, creds)
}

// FormRequest describes a form-encoded POST to a token endpoint.
type FormRequest struct {
	URL    string
	Form   url.Values
	Header http.Header

	// BasicUser and BasicPassword, when BasicUser is set, are sent as an
	// HTTP Basic Authorization header.
	BasicUser     string
	BasicPassword string
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

// PostForm sends fr and returns the response body on HTTP 200. Transport
// failures and non-200 answers are returned wrapped in ErrAuthRequest.
func PostForm(ctx context.Context, client *http.Client, fr *FormRequest) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fr.URL,
		strings.NewReader(fr.Form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: creating token request: %v", domain.ErrAuthRequest, err)
	}

	// Copied verbatim: some vendors want header names such as WM_CONSUMER.ID
	// in their exact case.
	for k, vs := range fr.Header {
		req.Header[k] = append(req.Header[k], vs...)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if fr.BasicUser != "" {
		req.SetBasicAuth(fr.BasicUser, fr.BasicPassword)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing token request: %v", domain.ErrAuthRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading token response: %v", domain.ErrAuthRequest, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		desc := errResp.ErrorDescription
		if desc == "" {
			desc = errResp.Message
		}
		return nil, fmt.Errorf(
			"%w: token request failed (status %d): %s - %s",
			domain.ErrAuthRequest,
			resp.StatusCode,
			errResp.Error,
			desc,
		)
	}

	return body, nil
}

// Lifetime converts a vendor's expires-in seconds into a duration, using
// fallback when the vendor omitted it.
func Lifetime(seconds int64, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
