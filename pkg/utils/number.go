package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseAmount converte um valor monetário textual; vazio ou inválido retorna false.
// Aceita vírgula como separador decimal ("120,50").
func ParseAmount(raw *string) (float64, bool) {
	amount, ok := parseDecimal(raw)
	if !ok {
		return 0, false
	}
	return amount.InexactFloat64(), true
}

func parseDecimal(raw *string) (decimal.Decimal, bool) {
	if raw == nil {
		return decimal.Zero, false
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return decimal.Zero, false
	}

	if strings.Contains(value, ",") && !strings.Contains(value, ".") {
		value = strings.ReplaceAll(value, ",", ".")
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}

	return amount, true
}

// SumAmounts soma componentes monetários tratando ausentes como zero
func SumAmounts(raws ...*string) float64 {
	total := decimal.Zero
	for _, raw := range raws {
		if amount, ok := parseDecimal(raw); ok {
			total = total.Add(amount)
		}
	}
	return total.InexactFloat64()
}

// Divide retorna zero quando o divisor é zero
func Divide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Percent calcula part/whole*100 limitado a 100
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Min(100, float64(part)/float64(whole)*100)
}

// IntValue retorna zero para ponteiros nulos
func IntValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
