// Package viewmodel contains the pure presentation transforms behind the
// TUI views. Everything here is testable without a terminal.
package viewmodel

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The original interface formats every figure with pt-BR locale rules
// (1.234 instead of 1,234); the terminal client keeps that behavior.
var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatNumber renders an integer with locale-aware grouping.
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}
