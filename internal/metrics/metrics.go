package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы запроса, значение метки outcome.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeTransport = "transport"
	OutcomeEmpty     = "empty"
	OutcomeParse     = "parse"
)

// Collector считает вызовы клиента и их длительность.
type Collector struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New создаёт коллектор и регистрирует его в reg. При nil reg метрики
// считаются, но никуда не экспортируются. Если метрики уже
// зарегистрированы другим клиентом, используются существующие.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "googl",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Client calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "googl",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Round trip time of client calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg == nil {
		return c, nil
	}

	var err error
	if c.Requests, err = register(reg, c.Requests); err != nil {
		return nil, err
	}
	if c.Duration, err = register(reg, c.Duration); err != nil {
		return nil, err
	}
	return c, nil
}

// register регистрирует коллектор или возвращает уже зарегистрированный.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("register metrics: %w", err)
}

// Observe фиксирует завершённый вызов.
func (c *Collector) Observe(operation, outcome string, took time.Duration) {
	c.Requests.WithLabelValues(operation, outcome).Inc()
	if outcome != OutcomeInvalid {
		c.Duration.WithLabelValues(operation).Observe(took.Seconds())
	}
}
