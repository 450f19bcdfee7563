package analytics

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

var tagName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// XML отображает отчёт в документ вида
//
//	<analytics>
//		<day>
//			<clicks shortUrl="1" longUrl="5"/>
//			<browsers>
//				<browser id="Chrome" count="3"/>
//			</browsers>
//		</day>
//	</analytics>
//
// Отступы табуляцией, порядок как в отчёте.
func (r *Report) XML() (string, error) {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("\n<analytics>\n")
	for _, p := range r.Periods {
		if !tagName.MatchString(p.Name) {
			return "", fmt.Errorf("period %q is not a valid XML name", p.Name)
		}
		fmt.Fprintf(&b, "\t<%s>\n", p.Name)
		fmt.Fprintf(&b, "\t\t<clicks shortUrl=\"%s\" longUrl=\"%s\"/>\n",
			attr(orZero(p.ShortURLClicks)), attr(orZero(p.LongURLClicks)))
		for _, f := range p.Fields {
			child := Singular(f.Name)
			if !tagName.MatchString(f.Name) || !tagName.MatchString(child) {
				return "", fmt.Errorf("field %q is not a valid XML name", f.Name)
			}
			fmt.Fprintf(&b, "\t\t<%s>\n", f.Name)
			for _, e := range f.Entries {
				fmt.Fprintf(&b, "\t\t\t<%s id=\"%s\" count=\"%s\"/>\n", child, attr(e.ID), attr(e.Count))
			}
			fmt.Fprintf(&b, "\t\t</%s>\n", f.Name)
		}
		fmt.Fprintf(&b, "\t</%s>\n", p.Name)
	}
	b.WriteString("</analytics>\n")
	return b.String(), nil
}

func attr(s string) string {
	var b strings.Builder
	// strings.Builder не возвращает ошибок записи
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
