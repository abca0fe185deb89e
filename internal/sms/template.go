package sms

import "strings"

// Render substitutes literal {placeholder} substrings in template with the
// given values. Placeholders without a mapping are left verbatim; this is a
// plain find-replace, not a template language.
func Render(template string, vars map[string]string) string {
	out := template
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}
