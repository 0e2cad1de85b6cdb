package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

// HTTPClient talks JSON over HTTP to the asset service. The underlying
// http.Client carries no timeout: a stalled request stalls until the
// transport itself gives up, matching the app's behavior.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log.With("component", "api"),
	}
}

// do sends one JSON request and returns the raw response. Any transport-level
// failure (no response at all) is mapped to ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode)
	return resp, nil
}

func (c *HTTPClient) ListAssets(ctx context.Context) ([]models.Asset, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/inventarios/", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var assets []models.Asset
	if err := json.NewDecoder(resp.Body).Decode(&assets); err != nil {
		return nil, fmt.Errorf("decoding directory: %w", err)
	}
	return assets, nil
}

// loginResponse mirrors the backend's login body. Every field is optional:
// the presence check below is the actual success criterion.
type loginResponse struct {
	User      string `json:"user"`
	UserType  string `json:"user_type"`
	FirstName string `json:"first_name"`
	Message   string `json:"message"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.Session, error) {
	payload := map[string]string{"username": username, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/api/login/", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body loginResponse
	// A malformed body is treated like missing fields, not a crash.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if body.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrLoginFailed, body.Message)
		}
		return nil, ErrLoginFailed
	}

	// An ok status with any identity field missing is still a failed login.
	if body.User == "" || body.UserType == "" || body.FirstName == "" {
		c.log.Warn(ctx, "login response missing identity fields")
		return nil, ErrLoginFailed
	}

	return &models.Session{
		User:      body.User,
		UserType:  body.UserType,
		FirstName: body.FirstName,
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/cadastro/", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		var body struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Detail != "" {
			return fmt.Errorf("%w: %s", ErrValidation, body.Detail)
		}
		return ErrValidation
	case resp.StatusCode == http.StatusConflict:
		// Fixed outcome, the body is deliberately ignored.
		return ErrAlreadyRegistered
	default:
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
}

func (c *HTTPClient) UpdateRoom(ctx context.Context, room models.Room) error {
	resp, err := c.do(ctx, http.MethodPut, "/api/editar_sala", room)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) DeleteRoom(ctx context.Context, name string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/delete_sala", map[string]string{"sala": name})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	return nil
}
