package greenops

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators: 18248 → "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with a fixed number of decimals and thousand
// separators: FormatFloat(15738.2, 2) → "15,738.20".
func FormatFloat(f float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	fixed := strconv.FormatFloat(f, 'f', decimals, 64)

	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Out of int64 range; fall back to the ungrouped form.
		return fixed
	}

	grouped := FormatNumber(n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	if !hasFrac {
		return grouped
	}
	return grouped + "." + fracPart
}

// FormatLarge abbreviates values of a million or more ("~1.5 billion") and
// groups smaller ones ("18,248").
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= MillionThreshold:
		return fmt.Sprintf("~%.1f million", n/MillionThreshold)
	default:
		return FormatFloat(n, 0)
	}
}
