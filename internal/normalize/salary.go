// Package normalize converts raw scraped text into typed values. Every
// function is pure and total: malformed input yields a best-effort default,
// never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/talentboard/harvester/internal/models"
)

// currencySymbols maps salary symbols to ISO codes, checked before 3-letter
// code detection. Order matters only for documentation; symbols are disjoint.
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"₹", "INR"},
	{"₽", "RUB"},
	{"₩", "KRW"},
	{"₦", "NGN"},
	{"₵", "GHS"},
	{"₺", "TRY"},
}

var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "INR", "RUB", "KRW", "NGN", "GHS", "TRY",
	"CAD", "AUD", "CHF", "SEK", "NOK", "DKK", "ZAR", "AED", "SGD", "HKD",
}

var salaryNumberRe = regexp.MustCompile(`(?i)(\d+(?:[,.]\d+)*)\s*(k)?`)

// ParseSalary normalizes a raw salary string. Text advertising a negotiable
// figure short-circuits to a COMPETITIVE salary with no numeric bounds. A
// dash-separated pair yields RANGE, a single figure FIXED, and text with no
// recognizable figure yields nil.
func ParseSalary(raw string) *models.Salary {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	currency := detectCurrency(text)
	period := detectPeriod(lower)

	for _, marker := range []string{"competitive", "doe", "negotiable"} {
		if strings.Contains(lower, marker) {
			return &models.Salary{
				Currency: currency,
				Period:   period,
				Mode:     models.SalaryCompetitive,
			}
		}
	}

	figures := extractFigures(text)
	switch {
	case len(figures) >= 2:
		lo, hi := figures[0], figures[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		return &models.Salary{
			Min:      lo,
			Max:      hi,
			Currency: currency,
			Period:   period,
			Mode:     models.SalaryRange,
		}
	case len(figures) == 1:
		return &models.Salary{
			Min:      figures[0],
			Max:      figures[0],
			Currency: currency,
			Period:   period,
			Mode:     models.SalaryFixed,
		}
	default:
		return nil
	}
}

func detectCurrency(text string) string {
	for _, c := range currencySymbols {
		if strings.Contains(text, c.symbol) {
			return c.code
		}
	}
	upper := strings.ToUpper(text)
	for _, code := range currencyCodes {
		if containsWord(upper, code) {
			return code
		}
	}
	return ""
}

func detectPeriod(lower string) models.SalaryPeriod {
	switch {
	case strings.Contains(lower, "hourly"), strings.Contains(lower, "per hour"), strings.Contains(lower, "/hr"):
		return models.PeriodHourly
	case strings.Contains(lower, "daily"), strings.Contains(lower, "per day"):
		return models.PeriodDaily
	case strings.Contains(lower, "weekly"), strings.Contains(lower, "per week"):
		return models.PeriodWeekly
	case strings.Contains(lower, "monthly"), strings.Contains(lower, "per month"):
		return models.PeriodMonthly
	case strings.Contains(lower, "yearly"), strings.Contains(lower, "per annum"), strings.Contains(lower, "annual"):
		return models.PeriodYearly
	default:
		return models.PeriodYearly
	}
}

// extractFigures pulls numeric values out of the text, handling thousands
// separators ("30,000") and the "k" shorthand ("30k" == 30000).
func extractFigures(text string) []float64 {
	matches := salaryNumberRe.FindAllStringSubmatch(text, -1)
	figures := make([]float64, 0, len(matches))
	for _, m := range matches {
		digits := strings.ReplaceAll(m[1], ",", "")
		val, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			continue
		}
		if m[2] != "" {
			val *= 1000
		}
		figures = append(figures, val)
	}
	return figures
}

func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isAlnum(s[start-1])
		afterOK := end == len(s) || !isAlnum(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
