package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"betpix/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	database.DB = db
	return mock
}

func callbackApp() *fiber.App {
	app := fiber.New()
	app.Post("/suitpay/callback", Callback)
	app.Post("/suitpay/payment", PaymentCallback)
	return app
}

func postJSON(app *fiber.App, path, body string) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req, -1)
}

func TestCallback_MissingTransactionID(t *testing.T) {
	resp, err := postJSON(callbackApp(), "/suitpay/callback", `{"statusTransaction":"PAID"}`)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCallback_IgnoresNonPaidStatus(t *testing.T) {
	resp, err := postJSON(callbackApp(), "/suitpay/callback",
		`{"idTransaction":"REF-1","statusTransaction":"WAITING_FOR_APPROVAL"}`)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPaymentCallback_ConfirmsKnownPayout(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "withdrawals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status", "payment_id"}).
			AddRow(4, 7, 50.0, 1, "TX-9"))

	resp, err := postJSON(callbackApp(), "/suitpay/payment",
		`{"idTransaction":"TX-9","statusTransaction":"PAID_OUT"}`)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			WithdrawalID uint `json:"withdrawal_id"`
			Status       int  `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint(4), body.Data.WithdrawalID)
	assert.Equal(t, 1, body.Data.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCallback_UnknownPayoutRejected(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "withdrawals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := postJSON(callbackApp(), "/suitpay/payment",
		`{"idTransaction":"TX-MISSING","statusTransaction":"PAID_OUT"}`)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
