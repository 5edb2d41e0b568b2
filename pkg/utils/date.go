package utils

import "time"

// ParseDate valida uma data no formato YYYY-MM-DD usado pela Graph API
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}
