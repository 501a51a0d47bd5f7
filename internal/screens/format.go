package screens

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats whole dollars with thousands separators, e.g. $40,000.
func Money(n int) string {
	return printer.Sprintf("$%d", n)
}

// Number formats an integer with thousands separators.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}
