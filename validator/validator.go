// Package validator проверяет URL перед отправкой в сервис сокращения ссылок.
//
// Проверка чисто синтаксическая и заметно уже RFC 3986: принимаются только
// абсолютные http/https адреса с доменным именем, путём, необязательным
// расширением файла и параметрами вида key=value.
package validator

import (
	"regexp"
	"sort"
)

const (
	hostPart  = `([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,6}`
	segment   = `[a-z0-9_~%+!$'()*,;:@-]`
	pathPart  = `(/` + segment + `*)*(/` + segment + `+\.[a-z0-9]{1,10})?`
	queryPair = `[a-z0-9_.~%+\[\]-]+=[a-z0-9_.~%+/:,@!$'()*;-]*`
	queryPart = `(\?` + queryPair + `(&` + queryPair + `)*)?`
)

var urlPattern = regexp.MustCompile(`(?i)^https?://` + hostPart + pathPart + queryPart + `$`)

// CheckURL проверяет строку одним якорным регулярным выражением.
func CheckURL(raw string) error {
	if raw == "" || !urlPattern.MatchString(raw) {
		return &InvalidURLError{URL: raw}
	}
	return nil
}

// Validator проверяет URL и наборы именованных параметров по реестру.
type Validator struct {
	registry Registry
}

// New создаёт валидатор поверх готового реестра полей.
func New(registry Registry) *Validator {
	return &Validator{registry: registry}
}

// Check проверяет один URL.
func (v *Validator) Check(raw string) error {
	return CheckURL(raw)
}

// Validate проверяет значения по схеме: required содержит признак обязательности
// поля, values: переданные значения (nil означает null).
// Каждое заданное значение, обязательное или нет, проверяется функцией своего вида.
func (v *Validator) Validate(required map[string]bool, values map[string]*string) error {
	for _, name := range sortedKeys(required) {
		if _, ok := v.registry.Lookup(name); !ok {
			return &UnknownFieldError{Field: name}
		}
		if !required[name] {
			continue
		}
		value, present := values[name]
		if !present {
			return &MissingRequiredFieldError{Field: name}
		}
		if value == nil {
			return &NullRequiredFieldError{Field: name}
		}
	}

	for _, name := range sortedKeys(values) {
		kind, ok := v.registry.Lookup(name)
		if !ok {
			return &UnknownFieldError{Field: name}
		}
		if values[name] == nil {
			continue
		}
		if err := kind.Check(*values[name]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
