package analytics

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	keyAnalytics      = "analytics"
	keyShortURLClicks = "shortUrlClicks"
	keyLongURLClicks  = "longUrlClicks"
)

// ErrNoAnalytics в ответе нет объекта analytics.
var ErrNoAnalytics = errors.New("response has no analytics object")

type rawEntry struct {
	ID    json.RawMessage `json:"id"`
	Count json.RawMessage `json:"count"`
}

// Decode разбирает ответ сервиса вида {"analytics": {<интервал>: {...}}}.
// Остальные ключи верхнего уровня пропускаются.
func Decode(body []byte) (*Report, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var report *Report
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if key != keyAnalytics {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("skip %q: %w", key, err)
			}
			continue
		}
		report, err = decodePeriods(dec)
		if err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}
	if report == nil {
		return nil, ErrNoAnalytics
	}
	return report, nil
}

func decodePeriods(dec *json.Decoder) (*Report, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	report := &Report{}
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		period, err := decodePeriod(dec, name)
		if err != nil {
			return nil, fmt.Errorf("period %q: %w", name, err)
		}
		report.Periods = append(report.Periods, period)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return report, nil
}

func decodePeriod(dec *json.Decoder, name string) (Period, error) {
	period := Period{Name: name}
	if err := expectDelim(dec, '{'); err != nil {
		return period, err
	}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return period, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return period, err
		}

		switch {
		case key == keyShortURLClicks:
			period.ShortURLClicks, err = scalar(raw)
		case key == keyLongURLClicks:
			period.LongURLClicks, err = scalar(raw)
		case raw[0] == '[':
			var field Field
			field, err = decodeField(key, raw)
			period.Fields = append(period.Fields, field)
		case raw[0] == '{':
			err = fmt.Errorf("field %q: unexpected object", key)
		}
		if err != nil {
			return period, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return period, err
	}
	return period, nil
}

func decodeField(name string, raw json.RawMessage) (Field, error) {
	var entries []rawEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return Field{}, fmt.Errorf("field %q: %w", name, err)
	}
	field := Field{Name: name, Entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		id, err := scalar(e.ID)
		if err != nil {
			return Field{}, fmt.Errorf("field %q id: %w", name, err)
		}
		count, err := scalar(e.Count)
		if err != nil {
			return Field{}, fmt.Errorf("field %q count: %w", name, err)
		}
		field.Entries = append(field.Entries, Entry{ID: id, Count: count})
	}
	return field, nil
}

// scalar возвращает строку как есть, а для числа, bool и null их JSON-текст.
func scalar(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("expected scalar, got %s", raw)
	default:
		return string(raw), nil
	}
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
