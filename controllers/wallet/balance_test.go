package wallet

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"betpix/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCheckBalance_RoundsToTwoPlaces(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "wallets"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "balance", "balance_bonus", "refer_rewards", "currency", "symbol",
		}).AddRow(3, 7, 10.456, 1.111, 0.999, "BRL", "R$"))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", models.User{Model: gorm.Model{ID: 7}, Name: "Jo"})
		return c.Next()
	})
	app.Get("/wallet/balance", CheckBalance)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/wallet/balance", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Balance      float64 `json:"balance"`
			BalanceBonus float64 `json:"balance_bonus"`
			ReferRewards float64 `json:"refer_rewards"`
			Total        float64 `json:"total"`
			Currency     string  `json:"currency"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 10.46, body.Data.Balance)
	assert.Equal(t, 1.11, body.Data.BalanceBonus)
	assert.Equal(t, 1.0, body.Data.ReferRewards)
	assert.Equal(t, 11.57, body.Data.Total)
	assert.Equal(t, "BRL", body.Data.Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}
