package util

import (
	"fmt"
	"time"
)

// FormatClock renders a timestamp as the local wall-clock string used for
// chart labels.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatUSD renders a price with two decimals and a dollar prefix.
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatSignedPercent renders a percentage with an explicit sign.
func FormatSignedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}
