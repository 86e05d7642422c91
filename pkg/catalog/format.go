package catalog

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyCode is the fixed display currency of the catalog.
const currencyCode = "LKR"

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a price as localized currency text with grouped digits
// and no fractional part, e.g. "LKR 59,900".
func FormatPrice(v float64) string {
	return pricePrinter.Sprintf("%s %v", currencyCode,
		number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatWeight renders a weight with its fixed unit suffix, e.g. "2.5 kg".
func FormatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " kg"
}

// FormatTimestamp renders a timestamp in local time for display. A missing
// (zero) timestamp renders as a placeholder dash.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("1/2/2006, 3:04:05 PM")
}
