package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/grocery-prices/internal/aggregate"
	"github.com/donaldgifford/grocery-prices/internal/api/handlers"
	"github.com/donaldgifford/grocery-prices/internal/api/handlers/mocks"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

func ribeyeResult() *aggregate.Result {
	price := decimal.RequireFromString("9.99")
	unit := "lb"
	return &aggregate.Result{
		Prices: []domain.PriceRecord{{
			Vendor:       domain.VendorKroger,
			ItemName:     "Ribeye Steak",
			UnitLabel:    &unit,
			RegularPrice: &price,
			Currency:     domain.DefaultCurrency,
		}},
		Sources: []aggregate.SourceStatus{
			{Vendor: domain.VendorKroger, Status: aggregate.StatusOK, Count: 1},
			{Vendor: domain.VendorWalmart, Status: aggregate.StatusOK},
		},
	}
}

func TestPriceHandler_GetPrices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*mocks.MockAggregator)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "returns merged prices",
			path: "/api/v1/prices?item=ribeye&zip=80911",
			setupMock: func(m *mocks.MockAggregator) {
				m.EXPECT().Query(mock.Anything, "ribeye", "80911").Return(ribeyeResult(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"item":"ribeye"`,
				`"zip":"80911"`,
				`"regular_price":"9.99"`,
				`"unit_label":"lb"`,
				`"promo_price":null`,
				`"status":"ok"`,
			},
		},
		{
			name: "zip is null when absent",
			path: "/api/v1/prices?item=ribeye",
			setupMock: func(m *mocks.MockAggregator) {
				m.EXPECT().Query(mock.Anything, "ribeye", "").Return(&aggregate.Result{
					Prices: []domain.PriceRecord{},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"zip":null`, `"prices":[]`},
		},
		{
			name: "legacy path",
			path: "/api/prices?item=ribeye",
			setupMock: func(m *mocks.MockAggregator) {
				m.EXPECT().Query(mock.Anything, "ribeye", "").Return(ribeyeResult(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"vendor":"kroger"`},
		},
		{
			name:       "missing item returns 400",
			path:       "/api/v1/prices?zip=80911",
			setupMock:  func(_ *mocks.MockAggregator) {},
			wantStatus: http.StatusBadRequest,
			wantBody: []string{
				`"error":"Missing item query parameter"`,
				`"details":"the item query parameter is required"`,
			},
		},
		{
			name:       "blank item returns 400",
			path:       "/api/v1/prices?item=%20%20",
			setupMock:  func(_ *mocks.MockAggregator) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"error":"Missing item query parameter"`},
		},
		{
			name: "aggregator validation error returns 400",
			path: "/api/v1/prices?item=ribeye",
			setupMock: func(m *mocks.MockAggregator) {
				m.EXPECT().Query(mock.Anything, "ribeye", "").
					Return(nil, fmt.Errorf("%w: item is required", domain.ErrValidation)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"details":"validation error: item is required"`},
		},
		{
			name: "unexpected error returns 500",
			path: "/api/v1/prices?item=ribeye",
			setupMock: func(m *mocks.MockAggregator) {
				m.EXPECT().Query(mock.Anything, "ribeye", "").Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"error":"Failed to retrieve prices"`, `"details":"boom"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			agg := mocks.NewMockAggregator(t)
			tt.setupMock(agg)

			_, api := humatest.New(t)
			handlers.RegisterPriceRoutes(api, handlers.NewPriceHandler(agg))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
