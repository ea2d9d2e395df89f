// Package client is a small Go client for the ProFast parcel API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/chachabrian/profast-backend/internal/models"
)

var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden access")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("service unavailable")
)

// APIError carries the status and message of any other failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: cli}
}

// SetToken sets the bearer token sent on authenticated calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	if body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body.Message)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, body.Message)
	}
	return &APIError{Status: resp.StatusCode(), Message: body.Message}
}

func (c *Client) do(req *resty.Request, method, path, op string, result interface{}) error {
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type UserCreated struct {
	Message    string `json:"message"`
	Inserted   bool   `json:"inserted"`
	InsertedID string `json:"insertedId,omitempty"`
}

// CreateUser registers email; Inserted is false when it already existed.
func (c *Client) CreateUser(ctx context.Context, user map[string]interface{}) (UserCreated, error) {
	var out UserCreated
	err := c.do(c.request(ctx).SetBody(user), http.MethodPost, "/users", "create user", &out)
	return out, err
}

func (c *Client) UserRole(ctx context.Context, email string) (models.Role, error) {
	var out struct {
		Role models.Role `json:"role"`
	}
	req := c.request(ctx).SetPathParam("email", email)
	if err := c.do(req, http.MethodGet, "/users/{email}/role", "get user role", &out); err != nil {
		return "", err
	}
	return out.Role, nil
}

type insertResult struct {
	InsertedID string `json:"insertedId"`
}

// CreateParcel stores parcel and returns its id.
func (c *Client) CreateParcel(ctx context.Context, parcel map[string]interface{}) (string, error) {
	var out insertResult
	if err := c.do(c.request(ctx).SetBody(parcel), http.MethodPost, "/parcels", "create parcel", &out); err != nil {
		return "", err
	}
	return out.InsertedID, nil
}

func (c *Client) GetParcel(ctx context.Context, id string) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	req := c.request(ctx).SetPathParam("id", id)
	if err := c.do(req, http.MethodGet, "/parcels/{id}", "get parcel", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListParcels needs a token. An empty email lists every parcel.
func (c *Client) ListParcels(ctx context.Context, email string) ([]map[string]interface{}, error) {
	out := []map[string]interface{}{}
	req := c.request(ctx)
	if email != "" {
		req.SetQueryParam("email", email)
	}
	if err := c.do(req, http.MethodGet, "/parcels", "list parcels", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error) {
	var out struct {
		ClientSecret string `json:"clientSecret"`
	}
	req := c.request(ctx).SetBody(map[string]int64{"amountInCents": amountInCents})
	if err := c.do(req, http.MethodPost, "/create-payment-intent", "create payment intent", &out); err != nil {
		return "", err
	}
	return out.ClientSecret, nil
}

type Payment struct {
	ParcelID      string  `json:"parcelId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
}

// RecordPayment returns the payment id. A parcel that is missing or already
// paid yields ErrNotFound.
func (c *Client) RecordPayment(ctx context.Context, payment Payment) (string, error) {
	var out insertResult
	if err := c.do(c.request(ctx).SetBody(payment), http.MethodPost, "/payments", "record payment", &out); err != nil {
		return "", err
	}
	return out.InsertedID, nil
}

func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	out := []models.Payment{}
	if err := c.do(c.request(ctx), http.MethodGet, "/payments", "list payments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type TrackingEvent struct {
	TrackingID string `json:"tracking_id"`
	ParcelID   string `json:"parcel_id,omitempty"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updated_by,omitempty"`
}

func (c *Client) AddTrackingEvent(ctx context.Context, event TrackingEvent) (string, error) {
	var out insertResult
	if err := c.do(c.request(ctx).SetBody(event), http.MethodPost, "/tracking", "add tracking event", &out); err != nil {
		return "", err
	}
	return out.InsertedID, nil
}
