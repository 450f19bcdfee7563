// Package transport описывает HTTP-коллаборатора клиента и его реализацию на net/http.
package transport

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=transport.go -destination=mocks/transport_mock.go -package=mocks

// Request полностью сформированный HTTP-запрос.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response ответ сервиса: код, строка статуса и тело.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Success сообщает, что сервис ответил кодом 2xx.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport синхронно отправляет один запрос.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}
