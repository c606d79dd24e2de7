package utils

import (
	"regexp"
	"strings"
	"time"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Formatos aceitos para a data de reserva, que às vezes vem com horário
var bookingDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
}

// IsISODate verifica apenas o formato YYYY-MM-DD, sem validar o calendário
func IsISODate(dateStr string) bool {
	return isoDatePattern.MatchString(strings.TrimSpace(dateStr))
}

// ParseISODate converte uma data YYYY-MM-DD para meia-noite UTC.
// Datas fora do calendário (ex: 2025-02-30) retornam false.
func ParseISODate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if !isoDatePattern.MatchString(dateStr) {
		return time.Time{}, false
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// ParseFlexibleDate aceita data ISO ou data com horário e retorna o dia (meia-noite UTC)
func ParseFlexibleDate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, false
	}

	for _, layout := range bookingDateLayouts {
		parsed, err := time.Parse(layout, dateStr)
		if err == nil {
			return TruncateToDay(parsed), true
		}
	}

	return time.Time{}, false
}

// TruncateToDay descarta o horário mantendo o dia do calendário
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInMonth retorna a quantidade de dias do mês (1-12)
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CountDays conta os dias do mês cujo dia da semana satisfaz o filtro
func CountDays(year, month int, match func(time.Weekday) bool) int {
	count := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		if match(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()) {
			count++
		}
	}
	return count
}

// FormatPeriod formata ano e mês no padrão mm-yyyy
func FormatPeriod(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("01-2006")
}
