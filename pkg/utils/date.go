package utils

import "time"

// FormatDate formata um instante como dia ISO, vazio para o valor zero.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
