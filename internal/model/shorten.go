package model

// ShortenRequest тело запроса на сокращение URL.
type ShortenRequest struct {
	LongURL string `json:"longUrl"`
}

// URLResource ответ сервиса на shorten и expand.
type URLResource struct {
	Kind    string `json:"kind,omitempty"`
	ID      string `json:"id,omitempty"`
	LongURL string `json:"longUrl,omitempty"`
	Status  string `json:"status,omitempty"`
}

// APIError ошибка в формате Google API.
type APIError struct {
	Error APIErrorBody `json:"error"`
}

// APIErrorBody содержимое ошибки.
type APIErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
