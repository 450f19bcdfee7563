// Package analytics разбирает статистику переходов по короткой ссылке и
// отображает её в XML.
//
// Порядок периодов, полей и записей совпадает с порядком в ответе сервиса.
package analytics

import "strings"

// Entry одна строка разбивки: идентификатор и количество переходов.
// Значения хранятся в том виде, в каком их прислал сервис.
type Entry struct {
	ID    string
	Count string
}

// Field разбивка по категории: browsers, platforms, countries, referrers.
type Field struct {
	Name    string
	Entries []Entry
}

// Period статистика за временной интервал (allTime, month, week, day, twoHours).
type Period struct {
	Name           string
	ShortURLClicks string
	LongURLClicks  string
	Fields         []Field
}

// Field возвращает разбивку по имени.
func (p Period) Field(name string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Report статистика по всем интервалам.
type Report struct {
	Periods []Period
}

// Period возвращает интервал по имени.
func (r *Report) Period(name string) (Period, bool) {
	for _, p := range r.Periods {
		if p.Name == name {
			return p, true
		}
	}
	return Period{}, false
}

// Singular имя дочернего тега для разбивки.
func Singular(field string) string {
	if field == "countries" {
		return "country"
	}
	return strings.TrimSuffix(field, "s")
}
