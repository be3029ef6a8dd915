package contract

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "02-01-2006"

// FormatEuro prints whole euros the Dutch way: € 27.000,-
func FormatEuro(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		sign, digits = "-", rest
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return "€ " + sign + b.String() + ",-"
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatKilometers(km int64) string {
	s := FormatEuro(km)
	s = strings.TrimPrefix(s, "€ ")
	return strings.TrimSuffix(s, ",-") + " km"
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "[niet opgegeven]"
	}
	return s
}
