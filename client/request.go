package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Totarae/googl/internal/model"
	"github.com/Totarae/googl/transport"
)

// OpKind вид операции.
type OpKind int

const (
	OpShorten OpKind = iota + 1
	OpExpand
	OpAnalytics
)

func (k OpKind) String() string {
	switch k {
	case OpShorten:
		return "shorten"
	case OpExpand:
		return "expand"
	case OpAnalytics:
		return "analytics"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Operation операция над одним URL.
type Operation struct {
	Kind OpKind
	URL  string
}

// ShortenOp сокращение длинного URL.
func ShortenOp(longURL string) Operation { return Operation{Kind: OpShorten, URL: longURL} }

// ExpandOp получение исходного URL по короткому.
func ExpandOp(shortURL string) Operation { return Operation{Kind: OpExpand, URL: shortURL} }

// AnalyticsOp полная статистика по короткому URL.
func AnalyticsOp(shortURL string) Operation { return Operation{Kind: OpAnalytics, URL: shortURL} }

// Endpoint адрес ресурса url с API-ключом.
func Endpoint(base *url.URL, apiKey string) *url.URL {
	u := *base
	u.Path = strings.TrimRight(u.Path, "/") + "/url"
	u.RawPath = ""
	u.RawQuery = url.Values{"key": []string{apiKey}}.Encode()
	u.Fragment = ""
	return &u
}

// PrepareRequest формирует запрос для операции. Функция не имеет побочных
// эффектов и не обращается к сети.
func PrepareRequest(op Operation, apiKey string, base *url.URL) (*transport.Request, error) {
	endpoint := Endpoint(base, apiKey)
	query := endpoint.Query()

	switch op.Kind {
	case OpShorten:
		body, err := json.Marshal(model.ShortenRequest{LongURL: op.URL})
		if err != nil {
			return nil, err
		}
		return &transport.Request{
			Method: http.MethodPost,
			URL:    endpoint.String(),
			Header: http.Header{"Content-Type": []string{"application/json"}},
			Body:   body,
		}, nil
	case OpExpand:
		query.Set("shortUrl", op.URL)
	case OpAnalytics:
		query.Set("shortUrl", op.URL)
		query.Set("projection", "FULL")
	default:
		return nil, fmt.Errorf("unsupported operation %s", op.Kind)
	}

	endpoint.RawQuery = query.Encode()
	return &transport.Request{
		Method: http.MethodGet,
		URL:    endpoint.String(),
		Header: http.Header{},
	}, nil
}
