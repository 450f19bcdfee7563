package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Totarae/googl/internal/model"
	"github.com/Totarae/googl/transport"
)

var (
	// ErrMissingCredential клиент создаётся без API-ключа.
	ErrMissingCredential = errors.New("API key is required")
	// ErrMissingURL метод вызван с пустым URL.
	ErrMissingURL = errors.New("URL is required")
	// ErrEmptyResponse сервис ответил успешно, но без тела.
	ErrEmptyResponse = errors.New("empty response body")
)

// TransportError запрос не дошёл до сервиса или сервис ответил не 2xx.
type TransportError struct {
	StatusCode int
	// Status строка статуса, например "404 Not Found".
	Status string
	// Message текст ошибки из тела ответа сервиса, если он есть.
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("transport error: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("transport error: %s: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("transport error: %s", e.Status)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError тело ответа не удалось разобрать.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newStatusError(resp *transport.Response) *TransportError {
	e := &TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
	var body model.APIError
	if json.Unmarshal(resp.Body, &body) == nil {
		e.Message = body.Error.Message
	}
	return e
}
