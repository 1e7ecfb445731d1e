package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Money renders an amount with the Taka sign and thousand separators.
// Amounts are ledger values; paise only show when present.
func Money(amount float64) string {
	neg := amount < 0
	abs := math.Abs(amount)

	whole := int64(abs)
	frac := abs - float64(whole)

	s := groupThousands(whole)
	if frac >= 0.005 {
		s += strings.TrimPrefix(strconv.FormatFloat(math.Round(frac*100)/100, 'f', 2, 64), "0")
	}
	if neg {
		return "-৳" + s
	}
	return "৳" + s
}

// Qty renders a quantity, dropping the decimals of whole numbers.
func Qty(q float64) string {
	if q == math.Trunc(q) {
		return groupThousands(int64(q))
	}
	return strconv.FormatFloat(q, 'f', 2, 64)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Date renders a ledger date, or a dash when unset.
func Date(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("2006-01-02")
}

// Pct renders an integer percentage.
func Pct(p int) string {
	return fmt.Sprintf("%d%%", p)
}
