// Package main implements a mock Kroger and Walmart API server for local
// development. It serves canned product, location, and price-availability
// responses so grocery-prices can run without real vendor credentials.
//
// Point the service at it with:
//
//	kroger.base_url:  http://localhost:8089/kroger/v1
//	kroger.token_url: http://localhost:8089/kroger/v1/connect/oauth2/token
//	walmart.base_url: http://localhost:8089/walmart
//	walmart.token_url: http://localhost:8089/walmart/identity/oauth/v1/token
package main

import (
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

//go:embed testdata/*.json
var embedded embed.FS

const (
	krogerTokenLifetime  = 1800
	walmartTokenLifetime = 900
	maxOfferIDs          = 20
	maxKrogerLimit       = 50
)

// fixtures holds the canned vendor data.
type fixtures struct {
	krogerProducts  []json.RawMessage
	krogerLocations json.RawMessage
	walmartItems    map[string]json.RawMessage
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	dir := flag.String("fixtures", "", "directory of fixture files (default: embedded testdata)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var fsys fs.FS = embedded
	root := "testdata"
	if *dir != "" {
		fsys, root = os.DirFS(*dir), "."
	}

	fx, err := loadFixtures(fsys, root)
	if err != nil {
		logger.Error("failed to load fixtures", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixtures",
		"kroger_products", len(fx.krogerProducts),
		"walmart_items", len(fx.walmartItems),
	)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock vendor server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixtures) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /kroger/v1/connect/oauth2/token", krogerTokenHandler(logger))
	mux.HandleFunc("GET /kroger/v1/products", bearer(krogerProductsHandler(logger, fx.krogerProducts)))
	mux.HandleFunc("GET /kroger/v1/locations", bearer(krogerLocationsHandler(logger, fx.krogerLocations)))
	mux.HandleFunc("POST /walmart/identity/oauth/v1/token", walmartTokenHandler(logger))
	mux.HandleFunc("POST /walmart/affil/catalog-api/v2/product/items/price-availability/",
		bearer(walmartPriceHandler(logger, fx.walmartItems)))
	return mux
}

func loadFixtures(fsys fs.FS, root string) (*fixtures, error) {
	var products struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := readJSON(fsys, root, "kroger_products.json", &products); err != nil {
		return nil, err
	}

	locations, err := fs.ReadFile(fsys, root+"/kroger_locations.json")
	if err != nil {
		return nil, fmt.Errorf("reading kroger_locations.json: %w", err)
	}

	var items struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := readJSON(fsys, root, "walmart_items.json", &items); err != nil {
		return nil, err
	}

	byOffer := make(map[string]json.RawMessage, len(items.Items))
	for _, raw := range items.Items {
		var it struct {
			OfferID string `json:"offerId"`
		}
		if err := json.Unmarshal(raw, &it); err != nil || it.OfferID == "" {
			return nil, fmt.Errorf("walmart_items.json: item without offerId: %s", raw)
		}
		byOffer[it.OfferID] = raw
	}

	return &fixtures{
		krogerProducts:  products.Data,
		krogerLocations: locations,
		walmartItems:    byOffer,
	}, nil
}

func readJSON(fsys fs.FS, root, name string, dst any) error {
	data, err := fs.ReadFile(fsys, root+"/"+name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func oauthError(w http.ResponseWriter, status int, code, desc string) {
	writeJSON(w, status, map[string]string{
		"error":             code,
		"error_description": desc,
	})
}

// bearer rejects requests without a bearer token, so clients exercise their
// retry-after-401 path when they forget one.
func bearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			oauthError(w, http.StatusUnauthorized, "invalid_token", "missing bearer token")
			return
		}
		next(w, r)
	}
}

func mockToken(vendor string) string {
	return "mock-" + vendor + "-token-" + strconv.FormatInt(time.Now().UnixNano(), 16)
}

func krogerTokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			oauthError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}
		if r.PostForm.Get("grant_type") != "client_credentials" {
			oauthError(w, http.StatusBadRequest, "unsupported_grant_type", "only client_credentials is supported")
			return
		}

		// Either Basic auth or client_id/client_secret in the body; creds are not verified.
		_, _, basic := r.BasicAuth()
		if !basic && r.PostForm.Get("client_id") == "" {
			logger.Warn("kroger token request missing client credentials")
			oauthError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": mockToken("kroger"),
			"expires_in":   krogerTokenLifetime,
			"token_type":   "bearer",
		})
		logger.Info("issued mock kroger token", "scope", r.PostForm.Get("scope"))
	}
}

func krogerProductsHandler(logger *slog.Logger, products []json.RawMessage) http.HandlerFunc {
	type indexedProduct struct {
		raw  json.RawMessage
		text string
	}
	indexed := make([]indexedProduct, 0, len(products))
	for _, raw := range products {
		var p struct {
			Description        string `json:"description"`
			ProductDescription *struct {
				Description string `json:"description"`
			} `json:"productDescription"`
		}
		//nolint:errcheck,gosec // fixture data is trusted; description extraction is best-effort
		json.Unmarshal(raw, &p)
		text := p.Description
		if p.ProductDescription != nil {
			text += " " + p.ProductDescription.Description
		}
		indexed = append(indexed, indexedProduct{raw: raw, text: strings.ToLower(text)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("filter.term")))
		if term == "" {
			oauthError(w, http.StatusBadRequest, "invalid_request", "filter.term is required")
			return
		}

		limit := 10
		if v, err := strconv.Atoi(r.URL.Query().Get("filter.limit")); err == nil && v > 0 {
			limit = min(v, maxKrogerLimit)
		}

		matched := []json.RawMessage{}
		for _, p := range indexed {
			if strings.Contains(p.text, term) {
				matched = append(matched, p.raw)
			}
		}
		if len(matched) > limit {
			matched = matched[:limit]
		}

		writeJSON(w, http.StatusOK, map[string]any{"data": matched})
		logger.Info("kroger products",
			"term", term,
			"location_id", r.URL.Query().Get("filter.locationId"),
			"returned", len(matched),
		)
	}
}

func krogerLocationsHandler(logger *slog.Logger, locations json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zip := strings.TrimSpace(r.URL.Query().Get("filter.zipCode"))
		if zip == "" {
			oauthError(w, http.StatusBadRequest, "invalid_request", "filter.zipCode is required")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(locations)
		logger.Info("kroger locations", "zip", zip)
	}
}

func walmartTokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			oauthError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}
		if r.Header.Get("WM_CONSUMER.ID") == "" || r.PostForm.Get("client_id") == "" {
			logger.Warn("walmart token request missing consumer id")
			oauthError(w, http.StatusUnauthorized, "invalid_client", "consumer id is required")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"accessToken": mockToken("walmart"),
			"expiresIn":   walmartTokenLifetime,
			"tokenType":   "Bearer",
		})
		logger.Info("issued mock walmart token")
	}
}

func walmartPriceHandler(logger *slog.Logger, items map[string]json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("WM_CONSUMER.ID") == "" {
			oauthError(w, http.StatusUnauthorized, "invalid_client", "WM_CONSUMER.ID header is required")
			return
		}

		var req struct {
			OfferIDs []string `json:"offerIds"`
			ZipCode  string   `json:"zipCode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			oauthError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
			return
		}
		if len(req.OfferIDs) == 0 || len(req.OfferIDs) > maxOfferIDs {
			oauthError(w, http.StatusBadRequest, "invalid_request",
				fmt.Sprintf("offerIds must hold between 1 and %d ids", maxOfferIDs))
			return
		}

		found := []json.RawMessage{}
		for _, id := range slices.Compact(slices.Clone(req.OfferIDs)) {
			if raw, ok := items[id]; ok {
				found = append(found, raw)
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{"items": found})
		logger.Info("walmart price availability",
			"requested", len(req.OfferIDs),
			"returned", len(found),
			"zip", req.ZipCode,
		)
	}
}
