// Package client реализует клиента API сервиса сокращения ссылок goo.gl:
// сокращение, раскрытие и статистику переходов по короткой ссылке.
//
// Каждый вызов выполняет ровно один синхронный HTTP-запрос. Клиент не меняет
// своё состояние после создания.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Totarae/googl/analytics"
	"github.com/Totarae/googl/internal/metrics"
	"github.com/Totarae/googl/internal/model"
	"github.com/Totarae/googl/transport"
	"github.com/Totarae/googl/validator"
)

// DefaultBaseURL базовый адрес API.
const DefaultBaseURL = "https://www.googleapis.com/urlshortener/v1"

// Client клиент API. Безопасен для последовательного переиспользования.
type Client struct {
	apiKey    string
	base      *url.URL
	transport transport.Transport
	validator *validator.Validator
	logger    *zap.Logger
	metrics   *metrics.Collector
}

type options struct {
	baseURL    string
	transport  transport.Transport
	httpClient *http.Client
	logger     *zap.Logger
	registerer prometheus.Registerer
	validator  *validator.Validator
}

// Option настраивает клиента.
type Option func(*options)

// WithBaseURL заменяет базовый адрес API.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTransport задаёт транспорт. Имеет приоритет над WithHTTPClient.
func WithTransport(t transport.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithHTTPClient задаёт *http.Client для транспорта по умолчанию.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger задаёт логгер.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegisterer регистрирует метрики клиента. Клиенты с общим reg
// пишут в одни и те же метрики.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithValidator задаёт валидатор со своим реестром полей.
func WithValidator(v *validator.Validator) Option {
	return func(o *options) { o.validator = v }
}

// New создаёт клиента. API-ключ обязателен.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := url.Parse(o.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", o.baseURL)
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.transport == nil {
		o.transport = transport.NewHTTPTransport(o.httpClient, o.logger)
	}
	if o.validator == nil {
		o.validator = validator.New(validator.DefaultRegistry())
	}

	collector, err := metrics.New(o.registerer)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiKey:    apiKey,
		base:      base,
		transport: o.transport,
		validator: o.validator,
		logger:    o.logger,
		metrics:   collector,
	}, nil
}

// Shorten возвращает короткий URL для longURL.
func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	var shortURL string
	err := c.call(ctx, ShortenOp(longURL), validator.FieldLongURL, func(body []byte) error {
		var err error
		shortURL, err = decodeField(body, "id", func(r model.URLResource) string { return r.ID })
		return err
	})
	if err != nil {
		return "", err
	}
	return shortURL, nil
}

// Expand возвращает исходный URL для shortURL.
func (c *Client) Expand(ctx context.Context, shortURL string) (string, error) {
	var longURL string
	err := c.call(ctx, ExpandOp(shortURL), validator.FieldShortURL, func(body []byte) error {
		var err error
		longURL, err = decodeField(body, "longUrl", func(r model.URLResource) string { return r.LongURL })
		return err
	})
	if err != nil {
		return "", err
	}
	return longURL, nil
}

// AnalyticsReport возвращает статистику переходов по shortURL.
func (c *Client) AnalyticsReport(ctx context.Context, shortURL string) (*analytics.Report, error) {
	var report *analytics.Report
	decode := func(body []byte) error {
		var err error
		report, err = analytics.Decode(body)
		return err
	}
	if err := c.call(ctx, AnalyticsOp(shortURL), validator.FieldShortURL, decode); err != nil {
		return nil, err
	}
	return report, nil
}

// GetAnalytics возвращает статистику переходов по shortURL в виде XML-документа.
func (c *Client) GetAnalytics(ctx context.Context, shortURL string) (string, error) {
	var doc string
	decode := func(body []byte) error {
		report, err := analytics.Decode(body)
		if err != nil {
			return err
		}
		doc, err = report.XML()
		return err
	}
	if err := c.call(ctx, AnalyticsOp(shortURL), validator.FieldShortURL, decode); err != nil {
		return "", err
	}
	return doc, nil
}

// call проверяет URL, отправляет запрос и передаёт тело ответа в decode.
func (c *Client) call(ctx context.Context, op Operation, field string, decode func([]byte) error) error {
	start := time.Now()
	log := c.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.Stringer("operation", op.Kind),
	)

	outcome, err := c.exchange(ctx, op, field, decode)
	c.metrics.Observe(op.Kind.String(), outcome, time.Since(start))
	if err != nil {
		log.Debug("call failed", zap.String("outcome", outcome), zap.Error(err))
		return err
	}
	log.Debug("call completed", zap.Duration("duration", time.Since(start)))
	return nil
}

func (c *Client) exchange(ctx context.Context, op Operation, field string, decode func([]byte) error) (string, error) {
	if err := c.validate(field, op.URL); err != nil {
		return metrics.OutcomeInvalid, err
	}

	req, err := PrepareRequest(op, c.apiKey, c.base)
	if err != nil {
		return metrics.OutcomeInvalid, err
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return metrics.OutcomeTransport, &TransportError{Err: err}
	}
	if !resp.Success() {
		return metrics.OutcomeTransport, newStatusError(resp)
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return metrics.OutcomeEmpty, ErrEmptyResponse
	}

	if err := decode(resp.Body); err != nil {
		return metrics.OutcomeParse, &ParseError{Err: err}
	}
	return metrics.OutcomeOK, nil
}

// validate пропускает URL через реестр полей; пустая строка означает
// отсутствующее значение.
func (c *Client) validate(field, value string) error {
	var v *string
	if value != "" {
		v = &value
	}
	err := c.validator.Validate(map[string]bool{field: true}, map[string]*string{field: v})
	if errors.Is(err, validator.ErrRequired) {
		return fmt.Errorf("%w: %w", ErrMissingURL, err)
	}
	return err
}

func decodeField(body []byte, name string, get func(model.URLResource) string) (string, error) {
	var res model.URLResource
	if err := json.Unmarshal(body, &res); err != nil {
		return "", err
	}
	value := get(res)
	if value == "" {
		return "", fmt.Errorf("response has no %q field", name)
	}
	return value, nil
}
