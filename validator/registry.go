package validator

import "fmt"

// Имена полей API, которые принимают URL.
const (
	FieldShortURL = "shortUrl"
	FieldLongURL  = "longUrl"
)

// Kind вид поля, определяет функцию проверки значения.
type Kind int

const (
	KindURL Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Check проверяет значение согласно виду поля.
func (k Kind) Check(value string) error {
	switch k {
	case KindURL:
		return CheckURL(value)
	default:
		return fmt.Errorf("no check for field kind %s", k)
	}
}

// Registry неизменяемое отображение имени поля в его вид.
type Registry struct {
	fields map[string]Kind
}

// NewRegistry копирует переданное описание полей.
func NewRegistry(fields map[string]Kind) Registry {
	copied := make(map[string]Kind, len(fields))
	for name, kind := range fields {
		copied[name] = kind
	}
	return Registry{fields: copied}
}

// DefaultRegistry описывает поля shortUrl и longUrl.
func DefaultRegistry() Registry {
	return NewRegistry(map[string]Kind{
		FieldShortURL: KindURL,
		FieldLongURL:  KindURL,
	})
}

// Lookup возвращает вид поля.
func (r Registry) Lookup(name string) (Kind, bool) {
	kind, ok := r.fields[name]
	return kind, ok
}

// Len количество описанных полей.
func (r Registry) Len() int {
	return len(r.fields)
}
