package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout таймаут клиента по умолчанию.
const DefaultTimeout = 10 * time.Second

// HTTPTransport реализует Transport поверх *http.Client.
type HTTPTransport struct {
	Client *http.Client
	Logger *zap.Logger
}

// NewHTTPTransport создаёт транспорт. При nil client используется клиент с DefaultTimeout,
// при nil logger логирование отключено.
func NewHTTPTransport(client *http.Client, logger *zap.Logger) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPTransport{Client: client, Logger: logger}
}

// Do отправляет запрос и целиком читает тело ответа.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for name, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}

	start := time.Now()
	resp, err := t.Client.Do(httpReq)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = Redact(uerr.URL)
		}
		t.Logger.Warn("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("uri", Redact(req.URL)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	t.Logger.Debug("HTTP request",
		zap.String("method", req.Method),
		zap.String("uri", Redact(req.URL)),
		zap.Int("status", resp.StatusCode),
		zap.Int("size", len(data)),
		zap.Duration("duration", time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       data,
	}, nil
}

// Redact скрывает API-ключ в адресе, чтобы он не попадал в логи.
func Redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparsable url>"
	}
	query := u.Query()
	if query.Has("key") {
		query.Set("key", "REDACTED")
		u.RawQuery = query.Encode()
	}
	return u.String()
}
