package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withdrawalApp() *fiber.App {
	app := fiber.New()
	app.Get("/suitpay/withdrawal/:id/:action", ApproveWithdrawal)
	app.Get("/suitpay/cancelwithdrawal/:id/:action", CancelWithdrawal)
	return app
}

func TestApproveWithdrawal_RejectsUnknownAction(t *testing.T) {
	app := withdrawalApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/suitpay/withdrawal/1/delete", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCancelWithdrawal_RejectsUnknownAction(t *testing.T) {
	app := withdrawalApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/suitpay/cancelwithdrawal/1/approve", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApproveWithdrawal_RejectsBadID(t *testing.T) {
	app := withdrawalApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/suitpay/withdrawal/abc/approve", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
