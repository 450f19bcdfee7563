// Package fakeapi имитирует API goo.gl в процессе: сокращает, раскрывает
// ссылки и отдаёт статистику. Используется в интеграционных тестах клиента и CLI.
package fakeapi

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Totarae/googl/internal/model"
)

// Prefix путь API, на котором фейк обслуживает ресурс url.
const Prefix = "/urlshortener/v1"

// ShortHost база коротких ссылок.
const ShortHost = "http://goo.gl/"

var defaultPeriods = []string{"allTime", "month", "week", "day", "twoHours"}

// Server фейковое API с хранилищем в памяти.
type Server struct {
	apiKey string
	logger *zap.Logger

	mu        sync.RWMutex
	urls      map[string]string
	analytics map[string]json.RawMessage
}

// New создаёт фейк, принимающий только apiKey.
func New(apiKey string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		apiKey:    apiKey,
		logger:    logger,
		urls:      make(map[string]string),
		analytics: make(map[string]json.RawMessage),
	}
}

// Router возвращает маршрутизатор фейка.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(LoggingMiddleware(s.logger))
	r.Use(GzipMiddleware)

	r.Route(Prefix, func(r chi.Router) {
		r.Use(s.requireKey)
		r.Post("/url", s.shorten)
		r.Get("/url", s.expand)
	})
	return r
}

// Add регистрирует пару короткой и длинной ссылки.
func (s *Server) Add(shortURL, longURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls[shortURL] = longURL
}

// SetAnalytics задаёт объект analytics, который вернётся для shortURL при projection=FULL.
func (s *Server) SetAnalytics(shortURL string, raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics[shortURL] = raw
}

// GenerateShortURL детерминированно строит короткую ссылку по длинной.
func GenerateShortURL(longURL string) string {
	hash := sha256.Sum256([]byte(longURL))
	id := base64.RawURLEncoding.EncodeToString(hash[:16])
	return ShortHost + strings.ToLower(id[:6])
}

func (s *Server) requireKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != s.apiKey {
			writeError(w, http.StatusBadRequest, "API key not valid. Please pass a valid API key.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) shorten(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		writeError(w, http.StatusBadRequest, "This API does not support parsing form-encoded input.")
		return
	}
	var req model.ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Parse Error")
		return
	}
	if req.LongURL == "" {
		writeError(w, http.StatusBadRequest, "Required")
		return
	}
	parsed, err := url.ParseRequestURI(req.LongURL)
	if err != nil || parsed.Host == "" {
		writeError(w, http.StatusBadRequest, "Invalid Value")
		return
	}

	short := GenerateShortURL(req.LongURL)
	s.Add(short, req.LongURL)

	writeJSON(w, http.StatusOK, model.URLResource{
		Kind:    "urlshortener#url",
		ID:      short,
		LongURL: req.LongURL,
	})
}

func (s *Server) expand(w http.ResponseWriter, r *http.Request) {
	shortURL := r.URL.Query().Get("shortUrl")
	if shortURL == "" {
		writeError(w, http.StatusBadRequest, "Required parameter: shortUrl")
		return
	}

	s.mu.RLock()
	longURL, ok := s.urls[shortURL]
	stats, hasStats := s.analytics[shortURL]
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	resp := struct {
		model.URLResource
		Analytics json.RawMessage `json:"analytics,omitempty"`
	}{
		URLResource: model.URLResource{
			Kind:    "urlshortener#url",
			ID:      shortURL,
			LongURL: longURL,
			Status:  "OK",
		},
	}
	if r.URL.Query().Get("projection") == "FULL" {
		if !hasStats {
			stats = emptyAnalytics()
		}
		resp.Analytics = stats
	}
	writeJSON(w, http.StatusOK, resp)
}

func emptyAnalytics() json.RawMessage {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range defaultPeriods {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`"` + name + `":{"shortUrlClicks":"0","longUrlClicks":"0"}`)
	}
	b.WriteByte('}')
	return json.RawMessage(b.String())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.APIError{Error: model.APIErrorBody{Code: status, Message: message}})
}
