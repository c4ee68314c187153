package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"betpix/models"

	"gorm.io/gorm"
)

var (
	// ErrUnavailable covers transport failures and non-2xx provider replies.
	ErrUnavailable = errors.New("gateway unavailable")
	// ErrProtocol means the provider answered 2xx but without the fields we need.
	ErrProtocol = errors.New("unexpected gateway response")
)

// Client talks to the PIX provider. Credentials come from the gateways table
// (env fallback); the callback URL is where the provider posts payment
// notifications.
type Client struct {
	URI          string
	ClientID     string
	ClientSecret string
	StatusURL    string
	CallbackURL  string

	HTTP *http.Client
}

// Credentials loads the provider credential row, falling back to env vars so
// a fresh install works before the admin saves the gateway form.
func Credentials(db *gorm.DB) models.Gateway {
	var g models.Gateway
	if err := db.First(&g).Error; err != nil {
		g = models.Gateway{
			URI:          os.Getenv("PIX_GATEWAY_URI"),
			ClientID:     os.Getenv("PIX_CLIENT_ID"),
			ClientSecret: os.Getenv("PIX_CLIENT_SECRET"),
			StatusURL:    os.Getenv("PIX_STATUS_URL"),
		}
	}
	if g.StatusURL == "" {
		g.StatusURL = "https://duspay.com.br/libs/consult/transaction_status"
	}
	return g
}

func NewClient(g models.Gateway, callbackURL string) *Client {
	return &Client{
		URI:          g.URI,
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		StatusURL:    g.StatusURL,
		CallbackURL:  callbackURL,
		HTTP:         &http.Client{Timeout: 15 * time.Second},
	}
}

// FromDB builds a ready client from the stored credentials.
func FromDB(db *gorm.DB) *Client {
	return NewClient(Credentials(db), os.Getenv("APP_URL")+"/suitpay/callback")
}

type QRCodeRequest struct {
	Name        string
	Document    string
	Phone       string
	Email       string
	Amount      float64
	Description string
}

type QRCodeResponse struct {
	ReferenceCode string `json:"reference_code"`
	QRCode        string `json:"qrcode"`
}

// RequestQRCode asks the provider for a PIX charge QR code. The reference
// code it returns becomes the external_id of the transaction/deposit pair.
func (c *Client) RequestQRCode(req QRCodeRequest) (*QRCodeResponse, error) {
	form := url.Values{
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
		"nome":          {req.Name},
		"documento":     {req.Document},
		"valor":         {strconv.FormatFloat(req.Amount, 'f', 2, 64)},
		"descricao":     {req.Description},
		"urlnoty":       {c.CallbackURL},
		"telefone":      {req.Phone},
		"email":         {req.Email},
	}

	resp, err := c.HTTP.PostForm(c.URI+"pix/qrcode", form)
	if err != nil {
		log.Printf("❌ [pix] qrcode request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ [pix] qrcode request rejected, status %d: %s", resp.StatusCode, body)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out QRCodeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	if out.ReferenceCode == "" {
		log.Printf("❌ [pix] qrcode response missing reference_code: %s", body)
		return nil, fmt.Errorf("%w: missing reference_code", ErrProtocol)
	}

	log.Printf("✅ [pix] qrcode issued, reference %s", out.ReferenceCode)
	return &out, nil
}

// ConsultTransactionStatus fetches the provider-side status of one charge.
func (c *Client) ConsultTransactionStatus(externalID string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.StatusURL+"?id="+url.QueryEscape(externalID), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("ci", c.ClientID)
	req.Header.Set("cs", c.ClientSecret)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	if out.Data.Status == "" {
		return "", fmt.Errorf("%w: missing data.status", ErrProtocol)
	}
	return out.Data.Status, nil
}

// PixCashOut sends a PIX payment to the given key and returns the provider
// transaction id. The provider answers "OK" when the payment was accepted.
func (c *Client) PixCashOut(key, typeKey string, amount float64) (string, error) {
	payload := map[string]any{
		"key":         key,
		"typeKey":     typeKey,
		"value":       amount,
		"callbackUrl": c.CallbackURL,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, c.URI+"pix/payment", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ci", c.ClientID)
	req.Header.Set("cs", c.ClientSecret)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("❌ [pix] cashout request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out struct {
		Response      string `json:"response"`
		IDTransaction string `json:"idTransaction"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	if out.Response != "OK" {
		return "", fmt.Errorf("cashout refused: %s", out.Response)
	}
	return out.IDTransaction, nil
}
