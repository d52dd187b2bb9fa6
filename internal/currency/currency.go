// Package currency holds the fixed table of supported currencies and
// formatting helpers for monetary amounts.
//
// Amounts are stored and summed without a currency; the currency only
// matters for presentation. No conversion is performed anywhere.
package currency

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is one entry of the supported-currency table.
type Currency struct {
	Code   string `json:"code" example:"USD"`
	Symbol string `json:"symbol" example:"$"`
	Name   string `json:"name" example:"US Dollar"`
}

// Currencies is the fixed table of supported currencies.
var Currencies = []Currency{
	{"USD", "$", "US Dollar"},
	{"EUR", "€", "Euro"},
	{"GBP", "£", "British Pound"},
	{"CAD", "C$", "Canadian Dollar"},
	{"AUD", "A$", "Australian Dollar"},
	{"JPY", "¥", "Japanese Yen"},
	{"INR", "₹", "Indian Rupee"},
	{"BRL", "R$", "Brazilian Real"},
	{"MXN", "$", "Mexican Peso"},
	{"NGN", "₦", "Nigerian Naira"},
}

// Supported reports whether a currency code is in the table.
func Supported(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}

	return false
}

// Symbol returns the symbol for a currency code.
// Unknown codes fall back to "$".
func Symbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}

	return "$"
}

var printer = message.NewPrinter(language.English)

// Format renders an amount with its currency symbol, a thousands
// separator and exactly two decimal places.
//
// Rounding to two decimals happens here and only here, amounts are
// summed exactly everywhere else. The rounding is done in decimal
// space, only the grouping of the integer digits goes through x/text.
func Format(amount decimal.Decimal, code string) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if rest, ok := strings.CutPrefix(fixed, "-"); ok {
		sign = "-"
		fixed = rest
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	digits, _ := strconv.ParseInt(intPart, 10, 64)

	return sign + Symbol(code) + printer.Sprintf("%v", number.Decimal(digits)) + "." + fracPart
}
