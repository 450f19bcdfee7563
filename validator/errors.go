package validator

import (
	"errors"
	"fmt"
)

// ErrRequired возвращается через Unwrap обеими ошибками «обязательное поле не задано».
var ErrRequired = errors.New("required field is not set")

// InvalidURLError сообщает, что строка не похожа на абсолютный HTTP(S) URL.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL: %q", e.URL)
}

// UnknownFieldError поле не описано в реестре.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// MissingRequiredFieldError обязательное поле отсутствует среди значений.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

func (e *MissingRequiredFieldError) Unwrap() error { return ErrRequired }

// NullRequiredFieldError обязательное поле передано, но без значения.
type NullRequiredFieldError struct {
	Field string
}

func (e *NullRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q is null", e.Field)
}

func (e *NullRequiredFieldError) Unwrap() error { return ErrRequired }
