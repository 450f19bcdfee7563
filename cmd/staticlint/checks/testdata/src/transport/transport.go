package transport

import "net/http"

func fetch() (*http.Response, error) {
	return http.DefaultClient.Get("http://example.com")
}
