package credentials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/grocery-prices/internal/credentials"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

func TestStore_Lookup(t *testing.T) {
	t.Parallel()

	store := credentials.New(map[domain.VendorID]credentials.Credentials{
		domain.VendorKroger:  {ClientID: "id", ClientSecret: "secret", Scope: "product.compact"},
		domain.VendorWalmart: {ClientID: "consumer-id"},
	})

	tests := []struct {
		name    string
		vendor  domain.VendorID
		want    credentials.Credentials
		wantErr string
	}{
		{
			name:   "complete pair",
			vendor: domain.VendorKroger,
			want:   credentials.Credentials{ClientID: "id", ClientSecret: "secret", Scope: "product.compact"},
		},
		{
			name:    "missing secret",
			vendor:  domain.VendorWalmart,
			wantErr: "client id and client secret must be set",
		},
		{
			name:    "unknown vendor",
			vendor:  "safeway",
			wantErr: `no credentials for vendor "safeway"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := store.Lookup(tt.vendor)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, domain.ErrAuthConfig)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_IsolatedFromInput(t *testing.T) {
	t.Parallel()

	in := map[domain.VendorID]credentials.Credentials{
		domain.VendorKroger: {ClientID: "id", ClientSecret: "secret"},
	}
	store := credentials.New(in)
	delete(in, domain.VendorKroger)

	assert.True(t, store.Configured(domain.VendorKroger))
	assert.False(t, store.Configured(domain.VendorWalmart))
}
