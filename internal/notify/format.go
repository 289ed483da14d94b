package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/gyaneshwarpardhi/paynotify/internal/stripe"
)

// placeholder keeps the fields block visually stable when a value is absent.
const placeholder = "-"

func orDash(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// formatAmount renders integer cents as a decimal amount with its currency.
func formatAmount(cents int64, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100.0, currency)
}

// formatDate renders a unix timestamp as e.g. "Sep 30, 2021".
func formatDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("Jan 02, 2006")
}

func formatPeriod(start, end int64) string {
	return fmt.Sprintf("%s – %s", formatDate(start), formatDate(end))
}

// formatLines renders invoice line items one per row; an empty list renders
// as the placeholder dash.
func formatLines(lines []stripe.LineItem) string {
	if len(lines) == 0 {
		return placeholder
	}
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, fmt.Sprintf("- %s (%s)", l.Description, formatAmount(l.Amount, l.Currency)))
	}
	return strings.Join(rows, "\n")
}

// nameWithDetail renders "name (detail)", "name <detail>" style pairs,
// dropping whichever part is empty.
func nameWithDetail(name, detail, lq, rq string) string {
	switch {
	case name == "" && detail == "":
		return ""
	case detail == "":
		return name
	case name == "":
		return lq + detail + rq
	}
	return name + " " + lq + detail + rq
}
