package fakeapi

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(respBody)
}

func TestShortenAndExpand(t *testing.T) {
	ts := httptest.NewServer(New("key", nil).Router())
	defer ts.Close()

	resp, body := doRequest(t, ts, http.MethodPost, Prefix+"/url?key=key",
		strings.NewReader(`{"longUrl":"https://example.com/page"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		ID      string `json:"id"`
		LongURL string `json:"longUrl"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, GenerateShortURL("https://example.com/page"), created.ID)
	assert.True(t, strings.HasPrefix(created.ID, ShortHost))

	resp, body = doRequest(t, ts, http.MethodGet,
		Prefix+"/url?key=key&shortUrl="+url.QueryEscape(created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"longUrl":"https://example.com/page"`)
	assert.NotContains(t, body, "analytics")
}

func TestExpandWithProjection(t *testing.T) {
	srv := New("key", nil)
	srv.Add("http://goo.gl/abc", "https://example.com")
	srv.Add("http://goo.gl/def", "https://example.org")
	srv.SetAnalytics("http://goo.gl/def", json.RawMessage(`{"day":{"shortUrlClicks":"7","longUrlClicks":"9"}}`))
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	_, body := doRequest(t, ts, http.MethodGet, Prefix+"/url?key=key&projection=FULL&shortUrl=http://goo.gl/abc", nil)
	assert.Contains(t, body, `"twoHours":{"shortUrlClicks":"0","longUrlClicks":"0"}`)

	_, body = doRequest(t, ts, http.MethodGet, Prefix+"/url?key=key&projection=FULL&shortUrl=http://goo.gl/def", nil)
	assert.Contains(t, body, `"analytics":{"day":{"shortUrlClicks":"7","longUrlClicks":"9"}}`)
}

func TestErrors(t *testing.T) {
	ts := httptest.NewServer(New("key", nil).Router())
	defer ts.Close()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{name: "wrong key", method: http.MethodGet, path: "/url?key=other&shortUrl=http://goo.gl/x", wantCode: http.StatusBadRequest},
		{name: "unknown short url", method: http.MethodGet, path: "/url?key=key&shortUrl=http://goo.gl/x", wantCode: http.StatusNotFound},
		{name: "no short url", method: http.MethodGet, path: "/url?key=key", wantCode: http.StatusBadRequest},
		{name: "bad json", method: http.MethodPost, path: "/url?key=key", body: "{", wantCode: http.StatusBadRequest},
		{name: "empty long url", method: http.MethodPost, path: "/url?key=key", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "relative long url", method: http.MethodPost, path: "/url?key=key", body: `{"longUrl":"page"}`, wantCode: http.StatusBadRequest},
		{name: "unsupported method", method: http.MethodDelete, path: "/url?key=key", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			resp, _ := doRequest(t, ts, tt.method, Prefix+tt.path, body)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestShortenRequiresJSON(t *testing.T) {
	ts := httptest.NewServer(New("key", nil).Router())
	defer ts.Close()

	resp, err := ts.Client().Post(ts.URL+Prefix+"/url?key=key", "text/plain", strings.NewReader("https://example.com"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGzip(t *testing.T) {
	srv := New("key", nil)
	srv.Add("http://goo.gl/abc", "https://example.com")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	// сжатый запрос и ответ без автоматической распаковки
	var payload bytes.Buffer
	zw := gzip.NewWriter(&payload)
	_, err := zw.Write([]byte(`{"longUrl":"https://example.org"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+Prefix+"/url?key=key", &payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"longUrl":"https://example.org"`)

	// стандартный клиент распаковывает ответ сам
	_, plain := doRequest(t, ts, http.MethodGet, Prefix+"/url?key=key&shortUrl=http://goo.gl/abc", nil)
	assert.Contains(t, plain, `"longUrl":"https://example.com"`)
}

func TestGzip_BadRequestBody(t *testing.T) {
	ts := httptest.NewServer(New("key", nil).Router())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+Prefix+"/url?key=key", strings.NewReader("not gzip"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
