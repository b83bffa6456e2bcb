package utils

import "github.com/shopspring/decimal"

// FormatMoney renders an amount as a display currency string with two decimal
// places, e.g. "$150.00". The API returns raw decimals alongside these so
// consumers that do their own formatting are not locked in.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
