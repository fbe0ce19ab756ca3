package paymentgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платёжного провайдера (Stripe-совместимый API)
// Провайдер создает payment intent и возвращает client secret,
// которым фронтенд завершает оплату
type Client struct {
	baseURL    string
	secretKey  string
	currency   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного провайдера
func NewClient(baseURL, secretKey, currency string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		currency:  currency,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateIntent создает платёжное намерение на указанную сумму
// Сумма передается в минимальных единицах валюты; VND не имеет субъединиц,
// поэтому amount отправляется как есть, без умножения
func (c *Client) CreateIntent(ctx context.Context, amount int64, bookingID int64) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", c.currency)
	form.Set("metadata[bookingId]", strconv.FormatInt(bookingID, 10))

	endpoint := fmt.Sprintf("%s/v1/payment_intents", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Провайдер возвращает структурированную ошибку - прокидываем её сообщение
		var errBody apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s (code=%s, status=%d)",
				ErrProvider, errBody.Error.Message, errBody.Error.Code, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrProvider, resp.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if intent.ID == "" || intent.ClientSecret == "" {
		return nil, fmt.Errorf("%w: intent id or client secret missing", ErrInvalidResponse)
	}

	return &intent, nil
}
