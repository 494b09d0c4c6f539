package handlers_test

import (
	"os"
	"testing"

	"github.com/donaldgifford/grocery-prices/internal/api/handlers"
)

func TestMain(m *testing.M) {
	handlers.UseErrorBody()
	os.Exit(m.Run())
}
