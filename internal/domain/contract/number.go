package contract

import (
	"strconv"
	"strings"
	"time"
)

// 36^4, keeps the suffix at four characters.
const numberSuffixSpace = 1679616

func normalizePlate(plate string) string {
	p := strings.ToUpper(plate)
	p = strings.NewReplacer("-", "", " ", "").Replace(p)
	if p == "" {
		return "ONBEKEND"
	}
	return p
}

// ContractNumber is the human-facing number printed on the contract. It is not
// guaranteed unique; archive records are keyed by their own id.
func ContractNumber(plate string, at time.Time) string {
	suffix := strconv.FormatInt(at.UnixMilli()%numberSuffixSpace, 36)
	for len(suffix) < 4 {
		suffix = "0" + suffix
	}
	return normalizePlate(plate) + "-" + at.Format("060102") + "-" + strings.ToUpper(suffix)
}

func FileName(plate string, at time.Time) string {
	return "koopovereenkomst-" + normalizePlate(plate) + "-" + at.Format("2006-01-02") + ".pdf"
}
