package handlers

import (
	"errors"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// APIError is the {error, details} body every failed operation returns.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"   example:"Missing item query parameter"`
	Details string `json:"details" example:"item is required"`
}

// Error implements error.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.Status
}

func newError(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	return &APIError{Status: status, Message: msg, Details: strings.Join(details, "; ")}
}

var errorBodyOnce sync.Once

// UseErrorBody makes huma render every error, including its own request
// validation failures, as an APIError. Call it before serving requests.
func UseErrorBody() {
	errorBodyOnce.Do(func() {
		huma.NewError = newError
	})
}

// mapError turns an aggregator error into an HTTP error. Only caller input
// problems are client errors; anything else is unexpected.
func mapError(err error, missing, failed string) error {
	if errors.Is(err, domain.ErrValidation) {
		return huma.Error400BadRequest(missing, err)
	}
	return huma.Error500InternalServerError(failed, err)
}
