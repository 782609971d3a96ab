// Package upstream is the single point of contact with the lottery
// platform REST API. Every call attaches the operator's bearer token,
// unwraps the platform's {success, message, data, error} envelope and
// maps HTTP 401 to ErrUnauthorized after discarding the stored token.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// ErrUnauthorized is returned when the platform rejects the bearer token.
// The stored token has already been cleared by the time callers see it.
var ErrUnauthorized = errors.New("platform session is no longer valid")

// APIError is a platform response with success=false, surfaced verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// TokenSource supplies the bearer token for authenticated calls and is
// cleared when the platform answers 401.
type TokenSource interface {
	Token() string
	Clear() error
}

// Client talks to the platform API. It performs no retries and no
// request queuing; each call is a single round trip whose failure
// surfaces directly to the caller.
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
	}
}

// envelope is the platform's uniform response wrapper.
type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func (e *envelope) errorMessage() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return "platform reported an unspecified error"
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform unreachable -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.tokens.Clear(); clearErr != nil {
			zap.L().Warn("failed to discard rejected token", zap.Error(clearErr))
		}
		return nil, ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode platform response -> %w", err)
	}

	if !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.errorMessage()}
	}

	return &env, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) (*domain.Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, err
	}

	return env.Pagination, decodeData(env, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	env, err := c.do(ctx, method, path, nil, body, "application/json")
	if err != nil {
		return err
	}

	return decodeData(env, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")

	return err
}

// Upload is an optional file attached to a multipart write.
type Upload struct {
	FileName string
	Content  io.Reader
}

// sendMultipart sends fields plus an optional file part. File-bearing
// platform endpoints expect multipart form bodies instead of JSON.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, filePart string, file *Upload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("multipart.WriteField -> %w", err)
		}
	}
	if file != nil {
		fw, err := w.CreateFormFile(filePart, file.FileName)
		if err != nil {
			return fmt.Errorf("multipart.CreateFormFile -> %w", err)
		}
		if _, err := io.Copy(fw, file.Content); err != nil {
			return fmt.Errorf("copy upload -> %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("multipart.Close -> %w", err)
	}

	env, err := c.do(ctx, method, path, nil, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}

	return decodeData(env, out)
}

func decodeData(env *envelope, out any) error {
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data -> %w", err)
	}

	return nil
}

func listQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}

	return q
}
